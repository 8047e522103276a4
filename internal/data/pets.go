package data

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrPetNotFound is returned when a pet id does not exist or belongs to a
// different user.
var ErrPetNotFound = errors.New("pet not found")

// PetsStore performs pet-profile DB operations.
type PetsStore struct {
	coll *mongo.Collection
}

// NewPetsStore returns a PetsStore using the given collection.
func NewPetsStore(coll *mongo.Collection) *PetsStore {
	return &PetsStore{coll: coll}
}

// PetsByUser returns all pets belonging to a user, oldest first.
func (s *PetsStore) PetsByUser(ctx context.Context, userID string) ([]*Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pets []*Pet
	if err = cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// AddPet inserts a pet row for the given user and returns it with the
// generated id.
func (s *PetsStore) AddPet(ctx context.Context, userID string, pet *Pet) (*Pet, error) {
	pet.UserID = userID
	pet.CreatedAt = time.Now().UTC()

	result, err := s.coll.InsertOne(ctx, pet)
	if err != nil {
		return nil, err
	}
	pet.ID = result.InsertedID.(bson.ObjectID)
	return pet, nil
}

// RemovePet deletes a pet by id, but only if it belongs to the given user.
func (s *PetsStore) RemovePet(ctx context.Context, userID, petID string) error {
	id, err := bson.ObjectIDFromHex(petID)
	if err != nil {
		return ErrPetNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPetNotFound
	}
	return nil
}
