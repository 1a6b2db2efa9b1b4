package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name     string     `json:"name" validate:"required,min=1,max=255"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type CreateFolderResponse struct {
	Id uuid.UUID `json:"id"`
}

type RenameFolderRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type RenameFolderResponse struct {
	Id uuid.UUID `json:"id"`
}

type MoveFolderRequest struct {
	Id       uuid.UUID
	ParentId *uuid.UUID `json:"parent_id"`
}

type MoveFolderResponse struct {
	Id uuid.UUID `json:"id"`
}

type FolderItemResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentId  *uuid.UUID `json:"parent_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// FolderTreeItemResponse nests child folders and the templates that live
// directly inside the folder.
type FolderTreeItemResponse struct {
	Id        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	Children  []*FolderTreeItemResponse `json:"children"`
	Templates []TemplateItemResponse    `json:"templates"`
}

type FolderTreeResponse struct {
	Folders []*FolderTreeItemResponse `json:"folders"`
	// Templates not assigned to any folder.
	Unfiled []TemplateItemResponse `json:"unfiled"`
}
