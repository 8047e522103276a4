package main

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/petfolk/vetLink-gRPC/internal/auth"
	"github.com/petfolk/vetLink-gRPC/internal/chat"
	"github.com/petfolk/vetLink-gRPC/internal/data"
	"github.com/petfolk/vetLink-gRPC/internal/match"
	"github.com/petfolk/vetLink-gRPC/internal/room"
	"github.com/petfolk/vetLink-gRPC/internal/telemetry"
	v1 "github.com/petfolk/vetLink-gRPC/proto/vetlink/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Register creates the credential record and the profile row, then returns a
// JWT carrying the resolved user id and role.
func (s *Server) Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterResponse, error) {
	role := req.GetRole()
	if role != data.RoleOwner && role != data.RoleVet {
		return nil, status.Errorf(codes.InvalidArgument, "role must be %q or %q", data.RoleOwner, data.RoleVet)
	}
	if strings.TrimSpace(req.GetFirstName()) == "" || strings.TrimSpace(req.GetLastName()) == "" {
		return nil, status.Errorf(codes.InvalidArgument, "first and last name are required")
	}

	hashed, err := auth.HashPassword(req.GetPassword())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to hash password: %v", err)
	}

	user, err := s.users.CreateUser(ctx, req.GetEmail(), hashed)
	if err != nil {
		if errors.Is(err, data.ErrUserExists) {
			return nil, status.Errorf(codes.AlreadyExists, "account already exists")
		}
		log.Printf("create user failed: %v", err)
		return nil, status.Errorf(codes.Internal, "failed to create user")
	}

	// The profile row is what every other screen reads; its user_id is the
	// credential id in hex.
	if _, err := s.profiles.CreateProfile(ctx, user.ID.Hex(), req.GetFirstName(), req.GetLastName(), req.GetEmail(), role); err != nil {
		log.Printf("create profile failed for %s: %v", user.ID.Hex(), err)
		return nil, status.Errorf(codes.Internal, "failed to create profile")
	}

	token, expiresAt, err := s.auth.GenerateToken(user.ID, user.Email, role)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate token: %v", err)
	}

	return &v1.RegisterResponse{
		Token:     token,
		UserId:    user.ID.Hex(),
		ExpiresAt: timestamppb.New(expiresAt),
	}, nil
}

// Login authenticates a user and returns a JWT.
func (s *Server) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.GetEmail())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "user not found")
	}

	if err := auth.CheckPassword(user.Password, req.GetPassword()); err != nil {
		return nil, status.Errorf(codes.PermissionDenied, "invalid credentials")
	}

	// The role lives on the profile row, not the credential record.
	profile, err := s.profiles.GetProfile(ctx, user.ID.Hex())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to read profile: %v", err)
	}

	token, expiresAt, err := s.auth.GenerateToken(user.ID, user.Email, profile.Role)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to generate token: %v", err)
	}

	return &v1.LoginResponse{
		Token:     token,
		UserId:    user.ID.Hex(),
		ExpiresAt: timestamppb.New(expiresAt),
	}, nil
}

// GetProfile returns the profile row for any user id; the chat window uses
// it for the header of the counterparty.
func (s *Server) GetProfile(ctx context.Context, req *v1.GetProfileRequest) (*v1.GetProfileResponse, error) {
	if _, ok := getClaimsFromContext(ctx); !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	profile, err := s.profiles.GetProfile(ctx, req.GetUserId())
	if err != nil {
		if errors.Is(err, data.ErrProfileNotFound) {
			return nil, status.Errorf(codes.NotFound, "profile not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to read profile: %v", err)
	}

	return &v1.GetProfileResponse{
		UserId:    profile.UserID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Role:      profile.Role,
	}, nil
}

// CompleteVetProfile records the extended vet profile and then the matching
// presence record (offline; verified only when a certification link was
// supplied). The two inserts are not transactional: if the second fails the
// extended row stays behind and the caller must retry. See DESIGN.md.
func (s *Server) CompleteVetProfile(ctx context.Context, req *v1.CompleteVetProfileRequest) (*v1.CompleteVetProfileResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}
	if claims.Role != data.RoleVet {
		return nil, status.Errorf(codes.PermissionDenied, "only vets complete a vet profile")
	}

	// validation failures are rejected before any write
	if strings.TrimSpace(req.GetTitle()) == "" ||
		strings.TrimSpace(req.GetSpeciality()) == "" ||
		strings.TrimSpace(req.GetPhoneNumber()) == "" {
		return nil, status.Errorf(codes.InvalidArgument, "title, speciality and phone number are required")
	}

	if _, err := s.vetProfiles.CreateVetProfile(ctx, claims.UserID, req.GetTitle(), req.GetSpeciality(), req.GetPhoneNumber(), req.GetCertificationLink()); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to save vet profile: %v", err)
	}

	verified := req.GetCertificationLink() != ""
	if _, err := s.activity.CreateActivity(ctx, claims.UserID, req.GetTitle(), req.GetSpeciality(), verified); err != nil {
		log.Printf("activity insert failed after vet profile for %s: %v", claims.UserID, err)
		return nil, status.Errorf(codes.Internal, "vet profile saved but presence record failed; retry to finish setup")
	}

	return &v1.CompleteVetProfileResponse{IsVerified: verified}, nil
}

// GetOnlineStatus reads the caller's own presence flag.
func (s *Server) GetOnlineStatus(ctx context.Context, req *v1.GetOnlineStatusRequest) (*v1.OnlineStatusResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	online, err := s.activity.OnlineStatus(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, data.ErrActivityNotFound) {
			return nil, status.Errorf(codes.FailedPrecondition, "complete the vet profile first")
		}
		return nil, status.Errorf(codes.Internal, "failed to read status: %v", err)
	}
	return &v1.OnlineStatusResponse{IsOnline: online}, nil
}

// ToggleOnlineStatus flips the caller's presence flag and returns the new
// value for immediate UI reflection.
func (s *Server) ToggleOnlineStatus(ctx context.Context, req *v1.ToggleOnlineStatusRequest) (*v1.OnlineStatusResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}
	if claims.Role != data.RoleVet {
		return nil, status.Errorf(codes.PermissionDenied, "only vets toggle presence")
	}

	online, err := s.activity.ToggleOnline(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, data.ErrActivityNotFound) {
			return nil, status.Errorf(codes.FailedPrecondition, "complete the vet profile first")
		}
		return nil, status.Errorf(codes.Internal, "failed to toggle status: %v", err)
	}

	telemetry.PresenceToggles.Inc()
	return &v1.OnlineStatusResponse{IsOnline: online}, nil
}

// MatchVets streams every online vet joined with profile details. A failure
// in any of the three reads aborts the whole aggregate; partial lists are
// never returned. Zero online vets is an empty stream, not an error.
func (s *Server) MatchVets(req *v1.MatchVetsRequest, stream v1.VetLinkService_MatchVetsServer) error {
	if _, ok := getClaimsFromContext(stream.Context()); !ok {
		return status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	acts, err := s.activity.OnlineVets(stream.Context())
	if err != nil {
		return status.Errorf(codes.Internal, "failed to read online vets: %v", err)
	}
	if len(acts) == 0 {
		return nil
	}

	userIDs := make([]string, 0, len(acts))
	for _, a := range acts {
		userIDs = append(userIDs, a.UserID)
	}

	profiles, err := s.profiles.ProfilesByUserIDs(stream.Context(), userIDs)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to read profiles: %v", err)
	}
	vetProfiles, err := s.vetProfiles.VetProfilesByUserIDs(stream.Context(), userIDs)
	if err != nil {
		return status.Errorf(codes.Internal, "failed to read vet profiles: %v", err)
	}

	for _, vet := range match.Combine(acts, profiles, vetProfiles) {
		if err := stream.Send(&v1.MatchVetsResponse{
			UserId:            vet.UserID,
			FirstName:         vet.FirstName,
			LastName:          vet.LastName,
			Email:             vet.Email,
			Title:             vet.Title,
			Speciality:        vet.Speciality,
			PhoneNumber:       vet.PhoneNumber,
			CertificationLink: vet.CertificationLink,
			IsVerified:        vet.IsVerified,
		}); err != nil {
			return status.Errorf(codes.Internal, "failed to send vet: %v", err)
		}
	}
	return nil
}

// OpenChat derives the room id from the caller and the requested peer,
// replays the room history in order and then keeps streaming live messages
// until the client goes away. Closing the stream releases the subscription.
func (s *Server) OpenChat(req *v1.OpenChatRequest, stream v1.VetLinkService_OpenChatServer) error {
	claims, ok := getClaimsFromContext(stream.Context())
	if !ok {
		return status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	roomID, err := room.ID(claims.UserID, req.GetPeerId())
	if err != nil {
		// Never open a malformed room; the client retries once identity and
		// peer are both resolved.
		return status.Errorf(codes.FailedPrecondition, "cannot derive room: %v", err)
	}

	if _, err := s.profiles.GetProfile(stream.Context(), req.GetPeerId()); err != nil {
		if errors.Is(err, data.ErrProfileNotFound) {
			return status.Errorf(codes.NotFound, "peer not found")
		}
		return status.Errorf(codes.Internal, "failed to verify peer: %v", err)
	}

	engine := chat.NewEngine(s.msgs, s.hub, roomID, func(m *data.Message) error {
		return stream.Send(&v1.ChatMessage{
			MsgId:         m.ID.Hex(),
			RoomId:        m.RoomID,
			SenderId:      m.SenderID,
			Text:          m.Text,
			IsOwnerSender: m.IsOwnerSender,
			CreatedAt:     timestamppb.New(m.CreatedAt),
		})
	})

	if err := engine.Open(stream.Context()); err != nil {
		return status.Errorf(codes.Internal, "failed to open chat: %v", err)
	}
	defer engine.Close()

	telemetry.OpenChatStreams.Inc()
	defer telemetry.OpenChatStreams.Dec()

	// Block until the client cancels or disconnects; live messages flow
	// through the engine meanwhile.
	<-stream.Context().Done()
	return nil
}

// SendMessage validates, persists and publishes one message. There is no
// optimistic echo: the sender's own open stream receives the saved copy
// through the room feed, in the same total order the peer sees.
func (s *Server) SendMessage(ctx context.Context, req *v1.SendMessageRequest) (*v1.SendMessageResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	roomID, err := room.ID(claims.UserID, req.GetPeerId())
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "cannot derive room: %v", err)
	}

	saved, err := chat.Send(ctx, s.msgs, s.hub, roomID, claims.UserID, req.GetText(), claims.Role == data.RoleOwner)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyText):
			return nil, status.Errorf(codes.InvalidArgument, "message text is empty")
		case errors.Is(err, chat.ErrNoSender), errors.Is(err, chat.ErrNoRoom):
			return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
		default:
			return nil, status.Errorf(codes.Internal, "failed to send message: %v", err)
		}
	}

	telemetry.MessagesSent.Inc()
	return &v1.SendMessageResponse{
		MsgId:     saved.ID.Hex(),
		RoomId:    saved.RoomID,
		CreatedAt: timestamppb.New(saved.CreatedAt),
	}, nil
}

// ListPets returns the caller's pets, oldest first.
func (s *Server) ListPets(ctx context.Context, req *v1.ListPetsRequest) (*v1.ListPetsResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	pets, err := s.pets.PetsByUser(ctx, claims.UserID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list pets: %v", err)
	}

	resp := &v1.ListPetsResponse{}
	for _, p := range pets {
		resp.Pets = append(resp.Pets, petToProto(p))
	}
	return resp, nil
}

// AddPet inserts one pet row for the caller.
func (s *Server) AddPet(ctx context.Context, req *v1.AddPetRequest) (*v1.AddPetResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}
	if strings.TrimSpace(req.GetName()) == "" || strings.TrimSpace(req.GetType()) == "" {
		return nil, status.Errorf(codes.InvalidArgument, "pet name and type are required")
	}

	pet, err := s.pets.AddPet(ctx, claims.UserID, &data.Pet{
		Name:      req.GetName(),
		Type:      req.GetType(),
		Breed:     req.GetBreed(),
		Age:       req.GetAge(),
		EyeColor:  req.GetEyeColor(),
		BodyColor: req.GetBodyColor(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to add pet: %v", err)
	}
	return &v1.AddPetResponse{Pet: petToProto(pet)}, nil
}

// RemovePet deletes one of the caller's pets.
func (s *Server) RemovePet(ctx context.Context, req *v1.RemovePetRequest) (*v1.RemovePetResponse, error) {
	claims, ok := getClaimsFromContext(ctx)
	if !ok {
		return nil, status.Errorf(codes.Unauthenticated, "missing auth claims")
	}

	if err := s.pets.RemovePet(ctx, claims.UserID, req.GetPetId()); err != nil {
		if errors.Is(err, data.ErrPetNotFound) {
			return nil, status.Errorf(codes.NotFound, "pet not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to remove pet: %v", err)
	}
	return &v1.RemovePetResponse{}, nil
}

func petToProto(p *data.Pet) *v1.Pet {
	return &v1.Pet{
		PetId:     p.ID.Hex(),
		Name:      p.Name,
		Type:      p.Type,
		Breed:     p.Breed,
		Age:       p.Age,
		EyeColor:  p.EyeColor,
		BodyColor: p.BodyColor,
		CreatedAt: timestamppb.New(p.CreatedAt),
	}
}
