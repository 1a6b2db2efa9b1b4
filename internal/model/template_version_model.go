package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TemplateVersion struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_template_versions_template,priority:1"`
	VersionNumber int            `gorm:"not null;index:idx_template_versions_template,priority:2"`
	Status        string         `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Content       datatypes.JSON `gorm:"type:jsonb;not null"`
	FormatVersion int            `gorm:"not null;default:1"`
	PublishedAt   *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (TemplateVersion) TableName() string {
	return "template_versions"
}
