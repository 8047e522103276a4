// Package normalize holds the small canonicalization helpers shared by the
// stores and the chat layer.
package normalize

import "strings"

// Email returns the storage/comparison form of an email address: surrounding
// whitespace removed and the address lower-cased.
func Email(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Text trims surrounding whitespace from message text. An all-whitespace
// message normalizes to the empty string and is rejected before any store
// call.
func Text(s string) string {
	return strings.TrimSpace(s)
}
