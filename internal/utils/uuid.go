package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for documents, rows and
// uploaded files.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceID returns a random identifier used to correlate log entries of one
// request.
func TraceID() string {
	return uuid.NewString()
}
