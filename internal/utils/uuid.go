package utils

import "github.com/google/uuid"

// UIDGenerator issues account uids and trace ids. UUIDv7 values sort by
// creation time.
type UIDGenerator struct{}

func NewUIDGenerator() *UIDGenerator {
	return &UIDGenerator{}
}

// Generate returns a new UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
