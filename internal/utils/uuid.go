package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers used to tag outbound requests.
// Version 7 UUIDs are time-ordered, so correlated log entries sort
// chronologically by request ID.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID, falling back to V4 if the system clock
// refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
