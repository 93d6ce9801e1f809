package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for request tracing. Version 7 UUIDs
// sort by creation time, which keeps trace ids ordered in log storage.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID, falling back to v4 if the clock-based
// generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
