package repositories

import (
	"context"

	"booking-api/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPlaceRepository struct {
	coll *mongo.Collection
}

func NewMongoPlaceRepository(db *mongo.Database) PlaceRepository {
	return &mongoPlaceRepository{coll: db.Collection(placesCollection)}
}

func (r *mongoPlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	if place.ID == "" {
		place.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, place)
	return mongoError(err)
}

func (r *mongoPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	var place domain.Place
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&place); err != nil {
		return nil, mongoError(err)
	}
	return &place, nil
}

func (r *mongoPlaceRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return r.find(ctx, bson.M{"owner": ownerID})
}

func (r *mongoPlaceRepository) GetAll(ctx context.Context) ([]domain.Place, error) {
	return r.find(ctx, bson.M{})
}

// Update reemplaza el documento completo; es una sola operación atómica
func (r *mongoPlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": place.ID}, place)
	if err != nil {
		return mongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPlaceRepository) find(ctx context.Context, filter interface{}) ([]domain.Place, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, mongoError(err)
	}
	places := []domain.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}
