package dto

import "github.com/google/uuid"

// Event type codes carried on the internal bus.
const (
	EventTemplatePreviewed = "template.previewed"
	EventTemplatePublished = "template.published"
)

// TemplateEventMessage is the payload published to the internal bus when a
// template is previewed or published.
type TemplateEventMessage struct {
	Type       string    `json:"type"`
	TemplateId uuid.UUID `json:"template_id"`
	VersionId  uuid.UUID `json:"version_id"`
	UserId     uuid.UUID `json:"user_id"`
}
