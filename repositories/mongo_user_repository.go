package repositories

import (
	"context"
	"errors"

	"booking-api/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection    = "users"
	placesCollection   = "places"
	bookingsCollection = "bookings"
)

// mongoUserRepository guarda usuarios en la colección "users"
type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository crea el repositorio de usuarios sobre MongoDB
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

// Create inserta el usuario; el índice único de email rechaza duplicados
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, user)
	return mongoError(err)
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mongoError(err)
	}
	return &user, nil
}

// mongoError traduce los errores del driver a los del paquete
func mongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	default:
		return err
	}
}
