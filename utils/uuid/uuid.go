// Package uuid generates MDM command UUIDs.
package uuid

import (
	"sync"

	"github.com/google/uuid"
)

// IDer generates command UUIDs.
type IDer interface {
	ID() string
}

// IDerFunc adapts an ordinary function into an IDer.
type IDerFunc func() string

// ID calls f.
func (f IDerFunc) ID() string {
	return f()
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewUUID creates a new random UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// ID generates a new random UUID.
func (u *UUID) ID() string {
	return uuid.NewString()
}

// StaticIDs cycles through a fixed list of IDs.
// It is safe for concurrent use.
type StaticIDs struct {
	mu  sync.Mutex
	ids []string
	i   int
}

// NewStaticIDs creates a new static ID generator.
// At least one ID must be provided.
func NewStaticIDs(ids ...string) *StaticIDs {
	return &StaticIDs{ids: ids}
}

// ID returns the next ID, wrapping around after the last one.
func (s *StaticIDs) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids[s.i%len(s.ids)]
	s.i++
	return id
}
