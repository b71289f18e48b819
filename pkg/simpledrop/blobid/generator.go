// Package blobid generates opaque object keys. Keys must be unguessable:
// retrieval requires no authentication, so possession of a key is the access
// control.
package blobid

import "github.com/google/uuid"

// Generator defines the interface for object key generation strategies
type Generator interface {
	// NewKey returns a fresh globally-unique key. Keys are never derived
	// from client input, timestamps, or counters.
	NewKey() string
}

// UUIDGenerator produces random version-4 UUIDs (122 bits of entropy),
// textually encoded. Collision probability across any realistic object count
// is negligible.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewKey() string {
	return uuid.NewString()
}
