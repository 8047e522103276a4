package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/petfolk/vetLink-gRPC/internal/auth"
	"github.com/petfolk/vetLink-gRPC/internal/chat"
	"github.com/petfolk/vetLink-gRPC/internal/data"
	v1 "github.com/petfolk/vetLink-gRPC/proto/vetlink/v1"
	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func claimsCtx(userID, role string) context.Context {
	return context.WithValue(context.Background(), authContextKey{}, &auth.Claims{UserID: userID, Role: role})
}

// fakeMsgs provides the message-store subset used by the chat handlers.
type fakeMsgs struct {
	mu      sync.Mutex
	saved   []*data.Message
	history []*data.Message
	saveErr error
}

func (f *fakeMsgs) SaveMessage(ctx context.Context, roomID, senderID, text string, isOwnerSender bool) (*data.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	m := &data.Message{
		ID:            bson.NewObjectID(),
		RoomID:        roomID,
		SenderID:      senderID,
		Text:          text,
		IsOwnerSender: isOwnerSender,
		CreatedAt:     time.Now().UTC(),
	}
	f.saved = append(f.saved, m)
	return m, nil
}

func (f *fakeMsgs) RoomMessages(ctx context.Context, roomID string) ([]*data.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*data.Message
	for _, m := range f.history {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMsgs) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

// fakeProfiles resolves profiles from a fixed map.
type fakeProfiles struct {
	byID map[string]*data.Profile
}

func (f *fakeProfiles) CreateProfile(ctx context.Context, userID, firstName, lastName, email, role string) (*data.Profile, error) {
	p := &data.Profile{UserID: userID, FirstName: firstName, LastName: lastName, Email: email, Role: role}
	if f.byID == nil {
		f.byID = map[string]*data.Profile{}
	}
	f.byID[userID] = p
	return p, nil
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID string) (*data.Profile, error) {
	if p, ok := f.byID[userID]; ok {
		return p, nil
	}
	return nil, data.ErrProfileNotFound
}

func (f *fakeProfiles) ProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*data.Profile, error) {
	var out []*data.Profile
	for _, id := range userIDs {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeActivity keeps presence flags in a map.
type fakeActivity struct {
	mu      sync.Mutex
	online  map[string]bool
	listErr error
}

func (f *fakeActivity) CreateActivity(ctx context.Context, userID, title, speciality string, isVerified bool) (*data.VetActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.online == nil {
		f.online = map[string]bool{}
	}
	f.online[userID] = false
	return &data.VetActivity{UserID: userID, Title: title, Speciality: speciality, IsVerified: isVerified}, nil
}

func (f *fakeActivity) OnlineStatus(ctx context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.online[userID]
	if !ok {
		return false, data.ErrActivityNotFound
	}
	return v, nil
}

func (f *fakeActivity) ToggleOnline(ctx context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.online[userID]
	if !ok {
		return false, data.ErrActivityNotFound
	}
	f.online[userID] = !v
	return !v, nil
}

func (f *fakeActivity) OnlineVets(ctx context.Context) ([]*data.VetActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*data.VetActivity
	for id, on := range f.online {
		if on {
			out = append(out, &data.VetActivity{UserID: id, Title: "Dr.", IsVerified: true})
		}
	}
	return out, nil
}

// fakeVetProfiles resolves extended rows from a fixed map.
type fakeVetProfiles struct {
	byID map[string]*data.VetProfile
}

func (f *fakeVetProfiles) CreateVetProfile(ctx context.Context, userID, title, speciality, phoneNumber, certificationLink string) (*data.VetProfile, error) {
	vp := &data.VetProfile{UserID: userID, Title: title, Speciality: speciality, PhoneNumber: phoneNumber, CertificationLink: certificationLink}
	if f.byID == nil {
		f.byID = map[string]*data.VetProfile{}
	}
	f.byID[userID] = vp
	return vp, nil
}

func (f *fakeVetProfiles) VetProfilesByUserIDs(ctx context.Context, userIDs []string) ([]*data.VetProfile, error) {
	var out []*data.VetProfile
	for _, id := range userIDs {
		if vp, ok := f.byID[id]; ok {
			out = append(out, vp)
		}
	}
	return out, nil
}

// serverStreamStub fills in the grpc.ServerStream surface for fake streams.
type serverStreamStub struct{ ctx context.Context }

func (s serverStreamStub) Context() context.Context     { return s.ctx }
func (s serverStreamStub) SetHeader(metadata.MD) error  { return nil }
func (s serverStreamStub) SendHeader(metadata.MD) error { return nil }
func (s serverStreamStub) SetTrailer(metadata.MD)       {}
func (s serverStreamStub) SendMsg(m any) error          { return nil }
func (s serverStreamStub) RecvMsg(m any) error          { return errors.New("RecvMsg not supported") }

// fakeChatStream captures ChatMessage sends from OpenChat.
type fakeChatStream struct {
	serverStreamStub
	mu   sync.Mutex
	msgs []*v1.ChatMessage
}

func (f *fakeChatStream) Send(m *v1.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, m)
	return nil
}

func (f *fakeChatStream) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.msgs))
	for i, m := range f.msgs {
		out[i] = m.GetText()
	}
	return out
}

// fakeMatchStream captures MatchVetsResponse sends.
type fakeMatchStream struct {
	serverStreamStub
	sent []*v1.MatchVetsResponse
}

func (f *fakeMatchStream) Send(m *v1.MatchVetsResponse) error {
	f.sent = append(f.sent, m)
	return nil
}

func newTestServer(msgs *fakeMsgs, profiles *fakeProfiles, activity *fakeActivity, vetProfiles *fakeVetProfiles) *Server {
	return &Server{
		profiles:    profiles,
		msgs:        msgs,
		activity:    activity,
		vetProfiles: vetProfiles,
		hub:         chat.NewRoomHub(),
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSendMessage_EmptyTextPerformsNoStoreCall(t *testing.T) {
	msgs := &fakeMsgs{}
	s := newTestServer(msgs, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})

	_, err := s.SendMessage(claimsCtx("u1", data.RoleOwner), &v1.SendMessageRequest{PeerId: "u2", Text: "   \t "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if msgs.saveCount() != 0 {
		t.Fatalf("whitespace-only send must not reach the store, got %d saves", msgs.saveCount())
	}
}

func TestSendMessage_MissingPeerFailsLoudly(t *testing.T) {
	msgs := &fakeMsgs{}
	s := newTestServer(msgs, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})

	_, err := s.SendMessage(claimsCtx("u1", data.RoleOwner), &v1.SendMessageRequest{PeerId: "", Text: "hi"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for unresolved peer, got %v", err)
	}
	if msgs.saveCount() != 0 {
		t.Fatalf("no store call expected, got %d", msgs.saveCount())
	}
}

func TestOpenChat_HistoryThenLive(t *testing.T) {
	base := time.Now().UTC().Add(-time.Minute)
	msgs := &fakeMsgs{history: []*data.Message{
		{ID: bson.NewObjectID(), RoomID: "u1_u2", SenderID: "u1", Text: "hello doc", IsOwnerSender: true, CreatedAt: base},
		{ID: bson.NewObjectID(), RoomID: "u1_u2", SenderID: "u2", Text: "hi, how can I help", CreatedAt: base.Add(time.Second)},
	}}
	profiles := &fakeProfiles{byID: map[string]*data.Profile{
		"u2": {UserID: "u2", FirstName: "Dr", LastName: "Selly", Role: data.RoleVet},
	}}
	s := newTestServer(msgs, profiles, &fakeActivity{}, &fakeVetProfiles{})

	ctx, cancel := context.WithCancel(claimsCtx("u1", data.RoleOwner))
	stream := &fakeChatStream{serverStreamStub: serverStreamStub{ctx: ctx}}

	done := make(chan error, 1)
	go func() { done <- s.OpenChat(&v1.OpenChatRequest{PeerId: "u2"}, stream) }()

	// history replays first, in order
	waitFor(t, func() bool { return len(stream.texts()) == 2 })
	got := stream.texts()
	if got[0] != "hello doc" || got[1] != "hi, how can I help" {
		t.Fatalf("history out of order: %v", got)
	}

	// a send from the owner reaches the owner's own stream via the feed
	if _, err := s.SendMessage(claimsCtx("u1", data.RoleOwner), &v1.SendMessageRequest{PeerId: "u2", Text: "my cat stopped eating"}); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	waitFor(t, func() bool { return len(stream.texts()) == 3 })
	if stream.texts()[2] != "my cat stopped eating" {
		t.Fatalf("live message missing or out of order: %v", stream.texts())
	}

	// and so does a send from the vet side, computed from the peer's ids
	if _, err := s.SendMessage(claimsCtx("u2", data.RoleVet), &v1.SendMessageRequest{PeerId: "u1", Text: "bring him in"}); err != nil {
		t.Fatalf("vet SendMessage failed: %v", err)
	}
	waitFor(t, func() bool { return len(stream.texts()) == 4 })
	last := stream.msgs[len(stream.msgs)-1]
	if last.GetText() != "bring him in" || last.GetIsOwnerSender() {
		t.Fatalf("vet message mislabeled: %+v", last)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("OpenChat returned error: %v", err)
	}
}

func TestOpenChat_UnknownPeer(t *testing.T) {
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})
	stream := &fakeChatStream{serverStreamStub: serverStreamStub{ctx: claimsCtx("u1", data.RoleOwner)}}

	err := s.OpenChat(&v1.OpenChatRequest{PeerId: "ghost"}, stream)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for unknown peer, got %v", err)
	}
}

func TestOpenChat_MissingPeerId(t *testing.T) {
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})
	stream := &fakeChatStream{serverStreamStub: serverStreamStub{ctx: claimsCtx("u1", data.RoleOwner)}}

	err := s.OpenChat(&v1.OpenChatRequest{PeerId: ""}, stream)
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition for empty peer id, got %v", err)
	}
}

func TestMatchVets_JoinDefaultsMissingRows(t *testing.T) {
	activity := &fakeActivity{online: map[string]bool{"v1": true}}
	profiles := &fakeProfiles{byID: map[string]*data.Profile{
		"v1": {UserID: "v1", FirstName: "Haydee", LastName: "N", Email: "haydee@example.com", Role: data.RoleVet},
	}}
	// no profile_vet row for v1
	s := newTestServer(&fakeMsgs{}, profiles, activity, &fakeVetProfiles{})

	stream := &fakeMatchStream{serverStreamStub: serverStreamStub{ctx: claimsCtx("u1", data.RoleOwner)}}
	if err := s.MatchVets(&v1.MatchVetsRequest{}, stream); err != nil {
		t.Fatalf("MatchVets failed: %v", err)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("expected 1 vet, got %d", len(stream.sent))
	}
	vet := stream.sent[0]
	if vet.GetFirstName() != "Haydee" {
		t.Fatalf("profile fields not joined: %+v", vet)
	}
	if vet.GetPhoneNumber() != "" || vet.GetCertificationLink() != "" {
		t.Fatalf("missing extended row should default to empty strings: %+v", vet)
	}
}

func TestMatchVets_NooneOnline(t *testing.T) {
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})
	stream := &fakeMatchStream{serverStreamStub: serverStreamStub{ctx: claimsCtx("u1", data.RoleOwner)}}

	if err := s.MatchVets(&v1.MatchVetsRequest{}, stream); err != nil {
		t.Fatalf("empty discovery must not error: %v", err)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("expected empty stream, got %d", len(stream.sent))
	}
}

func TestMatchVets_ReadFailureAbortsAggregate(t *testing.T) {
	activity := &fakeActivity{online: map[string]bool{"v1": true}, listErr: errors.New("backend down")}
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, activity, &fakeVetProfiles{})
	stream := &fakeMatchStream{serverStreamStub: serverStreamStub{ctx: claimsCtx("u1", data.RoleOwner)}}

	if err := s.MatchVets(&v1.MatchVetsRequest{}, stream); status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal on presence read failure, got %v", err)
	}
	if len(stream.sent) != 0 {
		t.Fatalf("partial results must not be streamed, got %d", len(stream.sent))
	}
}

func TestToggleOnlineStatus_RoundTrip(t *testing.T) {
	activity := &fakeActivity{online: map[string]bool{"v1": false}}
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, activity, &fakeVetProfiles{})

	resp, err := s.ToggleOnlineStatus(claimsCtx("v1", data.RoleVet), &v1.ToggleOnlineStatusRequest{})
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !resp.GetIsOnline() {
		t.Fatal("first toggle should go online")
	}

	fresh, err := s.GetOnlineStatus(claimsCtx("v1", data.RoleVet), &v1.GetOnlineStatusRequest{})
	if err != nil || fresh.GetIsOnline() != resp.GetIsOnline() {
		t.Fatalf("fresh read disagrees with toggle result: %v %v", fresh, err)
	}

	resp, err = s.ToggleOnlineStatus(claimsCtx("v1", data.RoleVet), &v1.ToggleOnlineStatusRequest{})
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if resp.GetIsOnline() {
		t.Fatal("second toggle should return to offline")
	}
}

func TestToggleOnlineStatus_OwnerRejected(t *testing.T) {
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, &fakeActivity{}, &fakeVetProfiles{})

	_, err := s.ToggleOnlineStatus(claimsCtx("u1", data.RoleOwner), &v1.ToggleOnlineStatusRequest{})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for owner toggle, got %v", err)
	}
}

func TestCompleteVetProfile_VerifiedByCertificationLink(t *testing.T) {
	activity := &fakeActivity{}
	vetProfiles := &fakeVetProfiles{}
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, activity, vetProfiles)

	resp, err := s.CompleteVetProfile(claimsCtx("v1", data.RoleVet), &v1.CompleteVetProfileRequest{
		Title:             "Ph.D.",
		Speciality:        "Dermatology",
		PhoneNumber:       "+15550100",
		CertificationLink: "https://certs.example.com/v1",
	})
	if err != nil {
		t.Fatalf("CompleteVetProfile failed: %v", err)
	}
	if !resp.GetIsVerified() {
		t.Fatal("certification link should mark the record verified")
	}

	// the presence record starts offline
	if online, err := activity.OnlineStatus(context.Background(), "v1"); err != nil || online {
		t.Fatalf("new presence record should exist and start offline: %v %v", online, err)
	}

	// without a link the record stays unverified
	resp, err = s.CompleteVetProfile(claimsCtx("v2", data.RoleVet), &v1.CompleteVetProfileRequest{
		Title:       "DVM",
		Speciality:  "General",
		PhoneNumber: "+15550101",
	})
	if err != nil {
		t.Fatalf("CompleteVetProfile without link failed: %v", err)
	}
	if resp.GetIsVerified() {
		t.Fatal("record without certification link must be unverified")
	}
}

func TestCompleteVetProfile_ValidationBeforeWrites(t *testing.T) {
	vetProfiles := &fakeVetProfiles{}
	s := newTestServer(&fakeMsgs{}, &fakeProfiles{}, &fakeActivity{}, vetProfiles)

	_, err := s.CompleteVetProfile(claimsCtx("v1", data.RoleVet), &v1.CompleteVetProfileRequest{Title: "  "})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if len(vetProfiles.byID) != 0 {
		t.Fatal("validation failure must not write any row")
	}

	_, err = s.CompleteVetProfile(claimsCtx("u1", data.RoleOwner), &v1.CompleteVetProfileRequest{
		Title: "Dr.", Speciality: "x", PhoneNumber: "y",
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for owner, got %v", err)
	}
}
