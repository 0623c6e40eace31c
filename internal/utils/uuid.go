package utils

import "github.com/google/uuid"

// UUIDGenerator is the production store.IDGenerator. Version 7 ids sort by
// creation time, so primary keys stay roughly append-only in both backends.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a canonical 36 character UUIDv7. If the clock source
// fails it degrades to a random v4 rather than failing the insert.
func (*UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return id.String()
}
