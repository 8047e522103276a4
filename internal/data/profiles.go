package data

import (
	"context"
	"errors"
	"time"

	"github.com/petfolk/vetLink-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrProfileNotFound is returned when no profile row matches the user id.
var ErrProfileNotFound = errors.New("profile not found")

// ProfilesStore performs profile DB operations.
type ProfilesStore struct {
	coll *mongo.Collection
}

// NewProfilesStore returns a ProfilesStore using the provided collection.
func NewProfilesStore(coll *mongo.Collection) *ProfilesStore {
	return &ProfilesStore{coll: coll}
}

// CreateProfile inserts the profile row written right after registration.
func (p *ProfilesStore) CreateProfile(ctx context.Context, userID, firstName, lastName, email, role string) (*Profile, error) {
	profile := &Profile{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     normalize.Email(email),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	result, err := p.coll.InsertOne(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = result.InsertedID.(bson.ObjectID)
	return profile, nil
}

// GetProfile finds a profile by user id.
func (p *ProfilesStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	err := p.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ProfilesByUserIDs returns the profile rows for the given user ids in one
// query. Missing ids are simply absent from the result; the discovery join
// defaults their fields instead of failing.
func (p *ProfilesStore) ProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	cursor, err := p.coll.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*Profile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
