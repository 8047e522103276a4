package match

import (
	"testing"

	"github.com/petfolk/vetLink-gRPC/internal/data"
)

func TestCombine_Empty(t *testing.T) {
	if got := Combine(nil, nil, nil); len(got) != 0 {
		t.Fatalf("no online vets must yield an empty list, got %d", len(got))
	}
}

func TestCombine_FullJoin(t *testing.T) {
	acts := []*data.VetActivity{
		{UserID: "v1", IsVerified: true, Title: "Ph.D.", Speciality: "Ophthalmology"},
	}
	profiles := []*data.Profile{
		{UserID: "v1", FirstName: "Haydee", LastName: "Selly", Email: "haydee@example.com"},
	}
	vetProfiles := []*data.VetProfile{
		{UserID: "v1", PhoneNumber: "+15550100", CertificationLink: "https://certs.example.com/v1"},
	}

	got := Combine(acts, profiles, vetProfiles)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	v := got[0]
	if v.FirstName != "Haydee" || v.Email != "haydee@example.com" {
		t.Fatalf("profile fields not joined: %+v", v)
	}
	if v.PhoneNumber != "+15550100" || v.CertificationLink != "https://certs.example.com/v1" {
		t.Fatalf("extended fields not joined: %+v", v)
	}
	if !v.IsVerified || v.Title != "Ph.D." || v.Speciality != "Ophthalmology" {
		t.Fatalf("presence fields lost: %+v", v)
	}
}

func TestCombine_DefaultsMissingRows(t *testing.T) {
	acts := []*data.VetActivity{
		{UserID: "v1", IsVerified: true, Title: "Dr."},
		{UserID: "v2", Title: "Dr."},
	}
	profiles := []*data.Profile{
		{UserID: "v1", FirstName: "Viki", LastName: "N", Email: "viki@example.com"},
	}
	// v1 has no extended row, v2 has neither joined row; both still appear
	// with empty defaults rather than failing the list.
	got := Combine(acts, profiles, nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].PhoneNumber != "" || got[0].CertificationLink != "" {
		t.Fatalf("missing profile_vet row should default to empty, got %+v", got[0])
	}
	if got[1].FirstName != "" || got[1].Email != "" {
		t.Fatalf("missing profiles row should default to empty, got %+v", got[1])
	}
	// Presence order preserved.
	if got[0].UserID != "v1" || got[1].UserID != "v2" {
		t.Fatalf("order not preserved: %v, %v", got[0].UserID, got[1].UserID)
	}
}
