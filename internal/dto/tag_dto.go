package dto

import (
	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type CreateTagResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTagRequest struct {
	Id    uuid.UUID
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateTagResponse struct {
	Id uuid.UUID `json:"id"`
}
