package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Template struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	FolderId    *uuid.UUID     `gorm:"type:uuid;index"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Tags        []*Tag         `gorm:"many2many:template_tags;"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Template) TableName() string {
	return "templates"
}
