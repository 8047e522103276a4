package data

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/petfolk/vetLink-gRPC/internal/db"
)

func TestUsersCreateAndLookup(t *testing.T) {
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
		_ = c.UsersCollection().Drop(context.Background())
		_ = c.Close(context.Background())
	}()
	_ = c.UsersCollection().Drop(ctx)
	if err := c.CreateIndexes(ctx); err != nil {
		t.Fatalf("CreateIndexes failed: %v", err)
	}

	users := NewUsersStore(c.UsersCollection())

	created, err := users.CreateUser(ctx, "Owner@Example.COM", "hashed-password")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("CreateUser did not populate id")
	}
	if created.Email != "owner@example.com" {
		t.Fatalf("email not normalized on insert: %q", created.Email)
	}

	// lookup with different casing still matches
	found, err := users.GetUserByEmail(ctx, "OWNER@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if found.ID != created.ID {
		t.Fatal("lookup returned a different user")
	}

	// duplicate registration maps to ErrUserExists via the unique index
	if _, err := users.CreateUser(ctx, "owner@example.com", "other-hash"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if _, err := users.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
