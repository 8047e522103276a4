package main

import (
	"context"
	"io"
	"net"
	"os"
	"testing"
	"time"

	"github.com/petfolk/vetLink-gRPC/internal/auth"
	"github.com/petfolk/vetLink-gRPC/internal/chat"
	"github.com/petfolk/vetLink-gRPC/internal/data"
	"github.com/petfolk/vetLink-gRPC/internal/db"
	v1 "github.com/petfolk/vetLink-gRPC/proto/vetlink/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// startTestServer stands up the full service over bufconn against a real
// Mongo instance and returns a connected client plus a cleanup func.
func startTestServer(t *testing.T, uri string) (v1.VetLinkServiceClient, func()) {
	t.Helper()
	ctx := context.Background()

	dbClient, err := db.New(ctx, uri)
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}

	users := data.NewUsersStore(dbClient.UsersCollection())
	profiles := data.NewProfilesStore(dbClient.ProfilesCollection())
	msgs := data.NewMessagesStore(dbClient.MessagesCollection())
	activity := data.NewVetActivityStore(dbClient.VetActivityCollection())
	vetProfiles := data.NewVetProfilesStore(dbClient.VetProfilesCollection())
	pets := data.NewPetsStore(dbClient.PetsCollection())
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer(
		grpc.UnaryInterceptor(authUnaryInterceptor(jwtMgr)),
		grpc.StreamInterceptor(authStreamInterceptor(jwtMgr)),
	)

	srv := newServer(users, profiles, msgs, activity, vetProfiles, pets, jwtMgr, chat.NewRoomHub())
	registerService(s, srv)

	go func() {
		_ = s.Serve(lis)
	}()

	dialer := func(ctx context.Context, _ string) (net.Conn, error) { return lis.Dial() }
	conn, err := grpc.DialContext(ctx, "bufnet", grpc.WithContextDialer(dialer), grpc.WithInsecure())
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}

	cleanup := func() {
		_ = conn.Close()
		s.GracefulStop()
		_ = dbClient.UsersCollection().Drop(context.Background())
		_ = dbClient.ProfilesCollection().Drop(context.Background())
		_ = dbClient.MessagesCollection().Drop(context.Background())
		_ = dbClient.VetActivityCollection().Drop(context.Background())
		_ = dbClient.VetProfilesCollection().Drop(context.Background())
		_ = dbClient.PetsCollection().Drop(context.Background())
		_ = dbClient.Close(context.Background())
	}

	return v1.NewVetLinkServiceClient(conn), cleanup
}

func authedCtx(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func register(t *testing.T, client v1.VetLinkServiceClient, email, role string) (userID, token string) {
	t.Helper()
	resp, err := client.Register(context.Background(), &v1.RegisterRequest{
		Email:     email,
		Password:  "testPass123",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("Register RPC failed for %s: %v", email, err)
	}
	return resp.GetUserId(), resp.GetToken()
}

func TestRegisterLoginAndProfile(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	client, cleanup := startTestServer(t, uri)
	defer cleanup()

	ctx := context.Background()
	email := time.Now().UTC().Format("20060102-150405") + "-owner@example.com"

	userID, token := register(t, client, email, data.RoleOwner)
	if token == "" || userID == "" {
		t.Fatal("Register response missing token or user_id")
	}

	loginResp, err := client.Login(ctx, &v1.LoginRequest{Email: email, Password: "testPass123"})
	if err != nil {
		t.Fatalf("Login RPC failed: %v", err)
	}
	if loginResp.GetToken() == "" {
		t.Fatal("Login response missing token")
	}

	profResp, err := client.GetProfile(authedCtx(ctx, token), &v1.GetProfileRequest{UserId: userID})
	if err != nil {
		t.Fatalf("GetProfile RPC failed: %v", err)
	}
	if profResp.GetRole() != data.RoleOwner || profResp.GetFirstName() != "Test" {
		t.Fatalf("unexpected profile: %+v", profResp)
	}

	// unauthenticated call is rejected
	if _, err := client.GetProfile(ctx, &v1.GetProfileRequest{UserId: userID}); err == nil {
		t.Fatal("GetProfile without token should fail")
	}
}

func TestVetPresenceAndDiscovery(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	client, cleanup := startTestServer(t, uri)
	defer cleanup()

	ctx := context.Background()
	stamp := time.Now().UTC().Format("20060102-150405")
	vetID, vetToken := register(t, client, stamp+"-vet@example.com", data.RoleVet)
	_, ownerToken := register(t, client, stamp+"-owner2@example.com", data.RoleOwner)

	if _, err := client.CompleteVetProfile(authedCtx(ctx, vetToken), &v1.CompleteVetProfileRequest{
		Title:             "Ph.D.",
		Speciality:        "Surgery",
		PhoneNumber:       "+15550102",
		CertificationLink: "https://certs.example.com/it",
	}); err != nil {
		t.Fatalf("CompleteVetProfile RPC failed: %v", err)
	}

	toggleResp, err := client.ToggleOnlineStatus(authedCtx(ctx, vetToken), &v1.ToggleOnlineStatusRequest{})
	if err != nil {
		t.Fatalf("ToggleOnlineStatus RPC failed: %v", err)
	}
	if !toggleResp.GetIsOnline() {
		t.Fatal("vet should be online after first toggle")
	}

	stream, err := client.MatchVets(authedCtx(ctx, ownerToken), &v1.MatchVetsRequest{})
	if err != nil {
		t.Fatalf("MatchVets RPC failed: %v", err)
	}
	var found bool
	for {
		vet, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("MatchVets recv failed: %v", err)
		}
		if vet.GetUserId() == vetID {
			found = true
			if vet.GetSpeciality() != "Surgery" || !vet.GetIsVerified() {
				t.Fatalf("joined vet row incomplete: %+v", vet)
			}
		}
	}
	if !found {
		t.Fatal("online vet missing from discovery stream")
	}

	// offline vets disappear from the stream
	if _, err := client.ToggleOnlineStatus(authedCtx(ctx, vetToken), &v1.ToggleOnlineStatusRequest{}); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	stream, err = client.MatchVets(authedCtx(ctx, ownerToken), &v1.MatchVetsRequest{})
	if err != nil {
		t.Fatalf("MatchVets RPC failed: %v", err)
	}
	for {
		vet, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("MatchVets recv failed: %v", err)
		}
		if vet.GetUserId() == vetID {
			t.Fatal("offline vet still listed")
		}
	}
}

func TestChatRoundTrip(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	client, cleanup := startTestServer(t, uri)
	defer cleanup()

	ctx := context.Background()
	stamp := time.Now().UTC().Format("20060102-150405")
	ownerID, ownerToken := register(t, client, stamp+"-chat-owner@example.com", data.RoleOwner)
	vetID, vetToken := register(t, client, stamp+"-chat-vet@example.com", data.RoleVet)

	// seed one message before anyone subscribes
	if _, err := client.SendMessage(authedCtx(ctx, ownerToken), &v1.SendMessageRequest{
		PeerId: vetID,
		Text:   "my dog keeps sneezing",
	}); err != nil {
		t.Fatalf("SendMessage RPC failed: %v", err)
	}

	streamCtx, cancel := context.WithCancel(authedCtx(ctx, vetToken))
	defer cancel()
	stream, err := client.OpenChat(streamCtx, &v1.OpenChatRequest{PeerId: ownerID})
	if err != nil {
		t.Fatalf("OpenChat RPC failed: %v", err)
	}

	first, err := stream.Recv()
	if err != nil {
		t.Fatalf("history recv failed: %v", err)
	}
	if first.GetText() != "my dog keeps sneezing" || !first.GetIsOwnerSender() {
		t.Fatalf("unexpected history message: %+v", first)
	}

	// a live send from the vet shows up on the vet's own stream
	if _, err := client.SendMessage(authedCtx(ctx, vetToken), &v1.SendMessageRequest{
		PeerId: ownerID,
		Text:   "any discharge from the nose?",
	}); err != nil {
		t.Fatalf("vet SendMessage RPC failed: %v", err)
	}
	second, err := stream.Recv()
	if err != nil {
		t.Fatalf("live recv failed: %v", err)
	}
	if second.GetText() != "any discharge from the nose?" || second.GetIsOwnerSender() {
		t.Fatalf("unexpected live message: %+v", second)
	}
	if first.GetRoomId() != second.GetRoomId() {
		t.Fatalf("room id changed between participants: %q vs %q", first.GetRoomId(), second.GetRoomId())
	}
}
