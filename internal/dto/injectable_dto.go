package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateInjectableRequest struct {
	Key      string                 `json:"key" validate:"required,min=1,max=100"`
	Label    string                 `json:"label" validate:"required,min=1,max=255"`
	DataType string                 `json:"data_type" validate:"required,oneof=TEXT NUMBER DATE CURRENCY BOOLEAN IMAGE TABLE ROLE_TEXT"`
	Metadata map[string]interface{} `json:"metadata"`
}

type CreateInjectableResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateInjectableRequest struct {
	Id       uuid.UUID
	Label    string                 `json:"label" validate:"required,min=1,max=255"`
	DataType string                 `json:"data_type" validate:"required,oneof=TEXT NUMBER DATE CURRENCY BOOLEAN IMAGE TABLE ROLE_TEXT"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UpdateInjectableResponse struct {
	Id uuid.UUID `json:"id"`
}

type InjectableItemResponse struct {
	Id         uuid.UUID              `json:"id"`
	Key        string                 `json:"key"`
	Label      string                 `json:"label"`
	DataType   string                 `json:"data_type"`
	SourceType string                 `json:"source_type"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	IsSystem   bool                   `json:"is_system"`
	CreatedAt  time.Time              `json:"created_at"`
}
