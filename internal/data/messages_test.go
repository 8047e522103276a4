package data

import (
	"context"
	"os"
	"testing"

	"github.com/petfolk/vetLink-gRPC/internal/db"
)

func TestMessagesSaveAndRoomOrder(t *testing.T) {
	// integration test; requires MONGODB_URI set externally
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := db.New(ctx, uri)
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	defer func() {
		_ = c.MessagesCollection().Drop(context.Background())
		_ = c.Close(context.Background())
	}()
	_ = c.MessagesCollection().Drop(ctx)

	msgs := NewMessagesStore(c.MessagesCollection())

	texts := []string{"hi doc", "hello, what seems to be the problem", "my cat stopped eating"}
	owners := []bool{true, false, true}
	for i, text := range texts {
		if _, err := msgs.SaveMessage(ctx, "u1_u2", "u1", text, owners[i]); err != nil {
			t.Fatalf("SaveMessage %d failed: %v", i, err)
		}
	}
	// another room must not leak into the history
	if _, err := msgs.SaveMessage(ctx, "u1_u3", "u1", "other room", true); err != nil {
		t.Fatalf("SaveMessage other room failed: %v", err)
	}

	history, err := msgs.RoomMessages(ctx, "u1_u2")
	if err != nil {
		t.Fatalf("RoomMessages failed: %v", err)
	}
	if len(history) != len(texts) {
		t.Fatalf("expected %d messages, got %d", len(texts), len(history))
	}
	for i, m := range history {
		if m.Text != texts[i] {
			t.Fatalf("history out of order at %d: got %q", i, m.Text)
		}
		if m.IsOwnerSender != owners[i] {
			t.Fatalf("is_user flag lost at %d", i)
		}
		if m.ID.IsZero() || m.CreatedAt.IsZero() {
			t.Fatalf("server-assigned fields missing at %d: %+v", i, m)
		}
	}
}

func TestMessagesEmptyRoom(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := db.New(ctx, uri)
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	defer func() { _ = c.Close(context.Background()) }()

	msgs := NewMessagesStore(c.MessagesCollection())
	history, err := msgs.RoomMessages(ctx, "never_used")
	if err != nil {
		t.Fatalf("RoomMessages on empty room failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d", len(history))
	}
}
