package entity

import (
	"time"

	"github.com/google/uuid"
)

// Injectable is a catalog entry describing one variable a document may
// reference. System entries (UserId nil) are seeded and shared; the rest are
// workspace-defined. SourceType mirrors the engine's INTERNAL/EXTERNAL
// classification.
type Injectable struct {
	Id         uuid.UUID
	Key        string
	Label      string
	DataType   string
	SourceType string
	Metadata   map[string]interface{} // JSONB
	UserId     *uuid.UUID             // nil for system entries
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
