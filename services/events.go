package services

import (
	"context"
	"log/slog"

	"booking-api/events"
)

// publish envía el evento sin hacer fallar la operación que lo generó
func publish(ctx context.Context, p events.Publisher, msg events.PlaceMessage) {
	if err := p.Publish(ctx, msg); err != nil {
		slog.Warn("Publish event failed", "action", msg.Action, "place_id", msg.PlaceID, "error", err)
	}
}
