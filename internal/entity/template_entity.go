package entity

import (
	"time"

	"github.com/google/uuid"
)

type Template struct {
	Id          uuid.UUID
	Name        string
	Description string
	FolderId    *uuid.UUID
	UserId      uuid.UUID
	Tags        []*Tag
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
