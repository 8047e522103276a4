package room

import "testing"

func TestID_Commutative(t *testing.T) {
	pairs := [][2]string{
		{"u1", "u2"},
		{"vet_9", "owner_3"},
		{"a", "abc"},
		{"user_2cK9x", "user_2bQ1z"},
	}

	for _, p := range pairs {
		ab, err := ID(p[0], p[1])
		if err != nil {
			t.Fatalf("ID(%q, %q) failed: %v", p[0], p[1], err)
		}
		ba, err := ID(p[1], p[0])
		if err != nil {
			t.Fatalf("ID(%q, %q) failed: %v", p[1], p[0], err)
		}
		if ab != ba {
			t.Fatalf("room id not commutative: %q vs %q", ab, ba)
		}
	}
}

func TestID_Deterministic(t *testing.T) {
	first, err := ID("u1", "u2")
	if err != nil {
		t.Fatalf("ID failed: %v", err)
	}
	if first != "u1_u2" {
		t.Fatalf("ID(u1, u2) = %q, want %q", first, "u1_u2")
	}
	for i := 0; i < 100; i++ {
		again, err := ID("u2", "u1")
		if err != nil {
			t.Fatalf("ID failed: %v", err)
		}
		if again != first {
			t.Fatalf("ID unstable across calls: %q vs %q", again, first)
		}
	}
}

func TestID_MissingParticipant(t *testing.T) {
	if _, err := ID("", "u2"); err != ErrMissingParticipant {
		t.Fatalf("expected ErrMissingParticipant for empty first id, got %v", err)
	}
	if _, err := ID("u1", ""); err != ErrMissingParticipant {
		t.Fatalf("expected ErrMissingParticipant for empty second id, got %v", err)
	}
	if _, err := ID("", ""); err != ErrMissingParticipant {
		t.Fatalf("expected ErrMissingParticipant for both ids empty, got %v", err)
	}
}
