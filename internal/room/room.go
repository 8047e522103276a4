// Package room derives the shared identifier for a two-party conversation.
package room

import "errors"

// Separator joins the two participant ids. User ids are identity-provider
// ids and never contain an underscore.
const Separator = "_"

// ErrMissingParticipant is returned when either participant id is empty,
// typically because the caller's own identity has not resolved yet. The
// resolver must fail loudly rather than produce a malformed room id.
var ErrMissingParticipant = errors.New("room: missing participant id")

// ID returns the canonical room id for the unordered pair (a, b). The two
// ids are ordered byte-wise so both participants compute the same value
// independently, with no coordination round-trip.
func ID(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrMissingParticipant
	}
	if b < a {
		a, b = b, a
	}
	return a + Separator + b, nil
}
