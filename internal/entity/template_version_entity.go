package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateVersion statuses.
const (
	VersionStatusDraft     = "DRAFT"
	VersionStatusPublished = "PUBLISHED"
	VersionStatusArchived  = "ARCHIVED"
)

// TemplateVersion is one revision of a template's document content. Content
// holds the serialized document tree exactly as the editor produced it;
// FormatVersion tracks the document format for the migration registry.
type TemplateVersion struct {
	Id            uuid.UUID
	TemplateId    uuid.UUID
	VersionNumber int
	Status        string
	Content       []byte // JSON document tree
	FormatVersion int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	PublishedAt   *time.Time
}
