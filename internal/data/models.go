package data

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Account roles stored on profile rows and carried in JWT claims.
const (
	RoleOwner = "owner"
	RoleVet   = "vet"
)

// User maps to the users collection: credentials only. Everything shown in
// the app lives on the Profile row keyed by the user id.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// Message maps to the messages collection. CreatedAt is server-assigned and,
// together with the insertion id, gives the total per-room order the chat
// window renders.
type Message struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	RoomID   string        `bson:"room_id"`
	SenderID string        `bson:"sender_id"`
	Text     string        `bson:"text"`
	// IsOwnerSender distinguishes the two roles in a 1:1 room. The field is
	// stored as is_user, which older clients still read.
	IsOwnerSender bool      `bson:"is_user"`
	CreatedAt     time.Time `bson:"created_at"`
}

// Profile maps to the profiles collection (display attributes, shared by
// owners and vets).
type Profile struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	FirstName string        `bson:"first_name"`
	LastName  string        `bson:"last_name"`
	Email     string        `bson:"email"`
	Role      string        `bson:"role"`
	CreatedAt time.Time     `bson:"created_at"`
}

// VetActivity is a vet's presence record in the vet_activity collection.
// Mutated only by the owning vet; read by any discovering client.
type VetActivity struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	UserID     string        `bson:"user_id"`
	IsOnline   bool          `bson:"is_online"`
	IsVerified bool          `bson:"is_verified"`
	Title      string        `bson:"title"`
	Speciality string        `bson:"speciality"`
	CreatedAt  time.Time     `bson:"created_at"`
}

// VetProfile is the extended vet profile in the profile_vet collection.
type VetProfile struct {
	ID                bson.ObjectID `bson:"_id,omitempty"`
	UserID            string        `bson:"user_id"`
	Title             string        `bson:"title"`
	Speciality        string        `bson:"speciality"`
	PhoneNumber       string        `bson:"phone_number"`
	CertificationLink string        `bson:"certification_link"`
	CreatedAt         time.Time     `bson:"created_at"`
}

// Pet maps to the pet_profile collection.
type Pet struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"user_id"`
	Name      string        `bson:"name"`
	Type      string        `bson:"type"`
	Breed     string        `bson:"breed"`
	Age       int32         `bson:"age"`
	EyeColor  string        `bson:"eye_color"`
	BodyColor string        `bson:"body_color"`
	CreatedAt time.Time     `bson:"created_at"`
}
