package domain

import "github.com/google/uuid"

// NewID generates a unique UUID v7 (time-ordered, K-sortable).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
