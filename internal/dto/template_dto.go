package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	FolderId    *uuid.UUID `json:"folder_id"`
}

type CreateTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTemplateRequest struct {
	Id          uuid.UUID
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	FolderId    *uuid.UUID `json:"folder_id"`
}

type UpdateTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}

type TagItemResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color,omitempty"`
}

type TemplateItemResponse struct {
	Id          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	FolderId    *uuid.UUID        `json:"folder_id"`
	Tags        []TagItemResponse `json:"tags"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

type ShowTemplateResponse struct {
	Id          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	FolderId    *uuid.UUID        `json:"folder_id"`
	Tags        []TagItemResponse `json:"tags"`
	// Latest version, draft or published.
	LatestVersion *TemplateVersionItemResponse `json:"latest_version,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     *time.Time                   `json:"updated_at"`
}

type TemplateVersionItemResponse struct {
	Id            uuid.UUID  `json:"id"`
	VersionNumber int        `json:"version_number"`
	Status        string     `json:"status"`
	FormatVersion int        `json:"format_version"`
	CreatedAt     time.Time  `json:"created_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type ShowTemplateVersionResponse struct {
	Id            uuid.UUID       `json:"id"`
	TemplateId    uuid.UUID       `json:"template_id"`
	VersionNumber int             `json:"version_number"`
	Status        string          `json:"status"`
	Content       json.RawMessage `json:"content"`
	FormatVersion int             `json:"format_version"`
	CreatedAt     time.Time       `json:"created_at"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
}

type SaveDraftRequest struct {
	TemplateId uuid.UUID
	Content    json.RawMessage `json:"content" validate:"required"`
}

type SaveDraftResponse struct {
	VersionId     uuid.UUID `json:"version_id"`
	VersionNumber int       `json:"version_number"`
}

type PublishVersionRequest struct {
	TemplateId uuid.UUID
	VersionId  uuid.UUID
}

type PublishVersionResponse struct {
	VersionId     uuid.UUID  `json:"version_id"`
	VersionNumber int        `json:"version_number"`
	FormatVersion int        `json:"format_version"`
	PublishedAt   *time.Time `json:"published_at"`
}

type AttachTagRequest struct {
	TemplateId uuid.UUID
	TagId      uuid.UUID `json:"tag_id" validate:"required"`
}

type AttachTagResponse struct {
	TemplateId uuid.UUID `json:"template_id"`
	TagId      uuid.UUID `json:"tag_id"`
}
