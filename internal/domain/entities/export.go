package entities

import (
	"time"

	"github.com/google/uuid"
)

// Row is one flattened leaf: its dot-joined path and its string value.
type Row struct {
	Path  string
	Value string
}

// Export describes one conversion run as persisted by the database sink.
type Export struct {
	ID        uuid.UUID
	Language  string
	Source    string
	Rows      int
	CreatedAt time.Time
}
