package events

import (
	"context"
	"encoding/json"
	"testing"
)

func TestPlaceMessage_JSON(t *testing.T) {
	b, err := json.Marshal(PlaceMessage{Action: ActionCreate, PlaceID: "p1"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := `{"action":"create","place_id":"p1"}`
	if string(b) != want {
		t.Errorf("Expected %s, got %s", want, b)
	}
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}

	if err := p.Publish(context.Background(), PlaceMessage{Action: ActionUpdate}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestNewRabbitMQPublisher_BadURL(t *testing.T) {
	if _, err := NewRabbitMQPublisher("not-an-amqp-url", "places_queue"); err == nil {
		t.Error("Expected error for invalid URL, got nil")
	}
}
