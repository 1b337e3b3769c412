// Package ident generates opaque record identifiers.
package ident

import "github.com/google/uuid"

// New returns a fresh identifier of the form "<prefix>_<uuid>", e.g.
// "art_6f1c...". The prefix makes ids self-describing in logs and payloads.
func New(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
