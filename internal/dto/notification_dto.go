package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationMessage is the payload pushed over the websocket hub.
type NotificationMessage struct {
	Id         uuid.UUID              `json:"id"`
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	TemplateId *uuid.UUID             `json:"template_id,omitempty"`
	VersionId  *uuid.UUID             `json:"version_id,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
