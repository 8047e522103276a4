package data

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrActivityNotFound is returned when a vet has no presence record yet,
// i.e. profile completion has not run.
var ErrActivityNotFound = errors.New("vet activity record not found")

// VetActivityStore performs presence-record DB operations. Toggles are
// serialized per user inside this process with a keyed mutex; across
// processes (two devices on one account) the write is last-wins, which the
// source system accepts.
type VetActivityStore struct {
	coll *mongo.Collection

	// mu guards locks; one entry per vet that has toggled, so the map is
	// bounded by the vet population.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewVetActivityStore returns a VetActivityStore using the given collection.
func NewVetActivityStore(coll *mongo.Collection) *VetActivityStore {
	return &VetActivityStore{coll: coll, locks: map[string]*sync.Mutex{}}
}

// CreateActivity inserts the presence record written by profile completion.
// New vets start offline; verified is decided by whether a certification
// link was supplied.
func (s *VetActivityStore) CreateActivity(ctx context.Context, userID, title, speciality string, isVerified bool) (*VetActivity, error) {
	act := &VetActivity{
		UserID:     userID,
		IsOnline:   false,
		IsVerified: isVerified,
		Title:      title,
		Speciality: speciality,
		CreatedAt:  time.Now().UTC(),
	}

	result, err := s.coll.InsertOne(ctx, act)
	if err != nil {
		return nil, err
	}
	act.ID = result.InsertedID.(bson.ObjectID)
	return act, nil
}

// OnlineStatus reads the current online flag for a vet.
func (s *VetActivityStore) OnlineStatus(ctx context.Context, userID string) (bool, error) {
	var act VetActivity
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&act)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrActivityNotFound
		}
		return false, err
	}
	return act.IsOnline, nil
}

// ToggleOnline reads the vet's current flag, flips it and writes it back,
// returning the new value. The per-user lock keeps rapid repeated taps down
// to one in-flight toggle at a time; there is no version check on the write.
func (s *VetActivityStore) ToggleOnline(ctx context.Context, userID string) (bool, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.OnlineStatus(ctx, userID)
	if err != nil {
		return false, err
	}

	next := !current
	if err := s.setOnline(ctx, userID, next); err != nil {
		return false, err
	}
	return next, nil
}

func (s *VetActivityStore) setOnline(ctx context.Context, userID string, online bool) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"is_online": online}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrActivityNotFound
	}
	return nil
}

// OnlineVets returns every presence record whose flag is set. No online vets
// is an empty slice, not an error.
func (s *VetActivityStore) OnlineVets(ctx context.Context) ([]*VetActivity, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"is_online": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var acts []*VetActivity
	if err = cursor.All(ctx, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

func (s *VetActivityStore) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[userID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[userID] = l
	return l
}

// VetProfilesStore performs extended-vet-profile DB operations.
type VetProfilesStore struct {
	coll *mongo.Collection
}

// NewVetProfilesStore returns a VetProfilesStore using the given collection.
func NewVetProfilesStore(coll *mongo.Collection) *VetProfilesStore {
	return &VetProfilesStore{coll: coll}
}

// CreateVetProfile inserts the extended profile row from the complete-profile
// screen. The matching activity record is written separately by the caller;
// the two inserts are not transactional (see DESIGN.md).
func (s *VetProfilesStore) CreateVetProfile(ctx context.Context, userID, title, speciality, phoneNumber, certificationLink string) (*VetProfile, error) {
	vp := &VetProfile{
		UserID:            userID,
		Title:             title,
		Speciality:        speciality,
		PhoneNumber:       phoneNumber,
		CertificationLink: certificationLink,
		CreatedAt:         time.Now().UTC(),
	}

	result, err := s.coll.InsertOne(ctx, vp)
	if err != nil {
		return nil, err
	}
	vp.ID = result.InsertedID.(bson.ObjectID)
	return vp, nil
}

// VetProfilesByUserIDs returns the extended rows for the given user ids.
// Vets without a row are absent; the discovery join defaults their phone and
// certification fields to empty strings.
func (s *VetProfilesStore) VetProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*VetProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*VetProfile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
