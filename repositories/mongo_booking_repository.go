package repositories

import (
	"context"

	"booking-api/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepository struct {
	bookings *mongo.Collection
	places   *mongo.Collection
}

func NewMongoBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepository{
		bookings: db.Collection(bookingsCollection),
		places:   db.Collection(placesCollection),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.bookings.InsertOne(ctx, booking)
	return mongoError(err)
}

// GetByUserWithPlace hace el "populate" en dos consultas:
// primero las reservas del usuario, después los places referenciados con $in
func (r *mongoBookingRepository) GetByUserWithPlace(ctx context.Context, userID string) ([]domain.Booking, error) {
	cursor, err := r.bookings.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, mongoError(err)
	}
	bookings := []domain.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	ids := make([]string, 0, len(bookings))
	seen := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.PlaceID != "" && !seen[b.PlaceID] {
			seen[b.PlaceID] = true
			ids = append(ids, b.PlaceID)
		}
	}
	if len(ids) == 0 {
		return bookings, nil
	}

	placeCursor, err := r.places.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, mongoError(err)
	}
	var places []domain.Place
	if err := placeCursor.All(ctx, &places); err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Place, len(places))
	for i := range places {
		byID[places[i].ID] = &places[i]
	}
	// Si el place ya no existe, Place queda en nil
	for i := range bookings {
		bookings[i].Place = byID[bookings[i].PlaceID]
	}
	return bookings, nil
}
