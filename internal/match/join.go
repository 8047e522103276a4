// Package match computes the discovery list: every online vet joined with
// its profile rows into one record the match screen can render.
package match

import "github.com/petfolk/vetLink-gRPC/internal/data"

// OnlineVet is the denormalized discovery record for one reachable vet.
type OnlineVet struct {
	UserID            string
	FirstName         string
	LastName          string
	Email             string
	Title             string
	Speciality        string
	PhoneNumber       string
	CertificationLink string
	IsVerified        bool
}

// Combine joins presence records with profile and extended-profile rows on
// user id. It is a pure function over the three collections so it can be
// tested apart from the store. A vet missing either joined row still makes
// the list with those fields defaulted to empty strings; presence order is
// preserved.
func Combine(activities []*data.VetActivity, profiles []*data.Profile, vetProfiles []*data.VetProfile) []*OnlineVet {
	if len(activities) == 0 {
		return nil
	}

	byProfile := make(map[string]*data.Profile, len(profiles))
	for _, p := range profiles {
		byProfile[p.UserID] = p
	}
	byVetProfile := make(map[string]*data.VetProfile, len(vetProfiles))
	for _, vp := range vetProfiles {
		byVetProfile[vp.UserID] = vp
	}

	out := make([]*OnlineVet, 0, len(activities))
	for _, act := range activities {
		vet := &OnlineVet{
			UserID:     act.UserID,
			Title:      act.Title,
			Speciality: act.Speciality,
			IsVerified: act.IsVerified,
		}
		if p, ok := byProfile[act.UserID]; ok {
			vet.FirstName = p.FirstName
			vet.LastName = p.LastName
			vet.Email = p.Email
		}
		if vp, ok := byVetProfile[act.UserID]; ok {
			vet.PhoneNumber = vp.PhoneNumber
			vet.CertificationLink = vp.CertificationLink
		}
		out = append(out, vet)
	}
	return out
}
