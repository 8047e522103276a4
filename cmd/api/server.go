package main

import (
	"context"

	"github.com/petfolk/vetLink-gRPC/internal/auth"
	"github.com/petfolk/vetLink-gRPC/internal/chat"
	"github.com/petfolk/vetLink-gRPC/internal/data"
	v1 "github.com/petfolk/vetLink-gRPC/proto/vetlink/v1"
	"google.golang.org/grpc"
)

// The store dependencies are narrow interfaces so handler tests can swap in
// fakes; the data package's Mongo stores satisfy them.

type usersStore interface {
	CreateUser(ctx context.Context, email, hashedPassword string) (*data.User, error)
	GetUserByEmail(ctx context.Context, email string) (*data.User, error)
}

type profilesStore interface {
	CreateProfile(ctx context.Context, userID, firstName, lastName, email, role string) (*data.Profile, error)
	GetProfile(ctx context.Context, userID string) (*data.Profile, error)
	ProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*data.Profile, error)
}

type messagesStore interface {
	SaveMessage(ctx context.Context, roomID, senderID, text string, isOwnerSender bool) (*data.Message, error)
	RoomMessages(ctx context.Context, roomID string) ([]*data.Message, error)
}

type activityStore interface {
	CreateActivity(ctx context.Context, userID, title, speciality string, isVerified bool) (*data.VetActivity, error)
	OnlineStatus(ctx context.Context, userID string) (bool, error)
	ToggleOnline(ctx context.Context, userID string) (bool, error)
	OnlineVets(ctx context.Context) ([]*data.VetActivity, error)
}

type vetProfilesStore interface {
	CreateVetProfile(ctx context.Context, userID, title, speciality, phoneNumber, certificationLink string) (*data.VetProfile, error)
	VetProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*data.VetProfile, error)
}

type petsStore interface {
	PetsByUser(ctx context.Context, userID string) ([]*data.Pet, error)
	AddPet(ctx context.Context, userID string, pet *data.Pet) (*data.Pet, error)
	RemovePet(ctx context.Context, userID, petID string) error
}

// Server implements the VetLink service and holds references to the stores,
// the auth manager and the room hub.
type Server struct {
	v1.UnimplementedVetLinkServiceServer

	users       usersStore
	profiles    profilesStore
	msgs        messagesStore
	activity    activityStore
	vetProfiles vetProfilesStore
	pets        petsStore
	auth        *auth.JWTManager
	hub         *chat.RoomHub
}

// newServer returns a ready-to-use Server wired with stores, auth manager
// and hub.
func newServer(users usersStore, profiles profilesStore, msgs messagesStore, activity activityStore, vetProfiles vetProfilesStore, pets petsStore, authMgr *auth.JWTManager, hub *chat.RoomHub) *Server {
	return &Server{
		users:       users,
		profiles:    profiles,
		msgs:        msgs,
		activity:    activity,
		vetProfiles: vetProfiles,
		pets:        pets,
		auth:        authMgr,
		hub:         hub,
	}
}

// registerService registers the VetLinkService on the given gRPC server.
func registerService(s *grpc.Server, srv *Server) {
	v1.RegisterVetLinkServiceServer(s, srv)
}
