package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Injectable struct {
	Id         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key        string            `gorm:"type:varchar(100);not null;uniqueIndex:idx_injectables_scope_key,priority:2"`
	Label      string            `gorm:"type:varchar(255);not null"`
	DataType   string            `gorm:"type:varchar(20);not null;default:'TEXT'"`
	SourceType string            `gorm:"type:varchar(20);not null;default:'EXTERNAL'"`
	Metadata   datatypes.JSONMap `gorm:"type:jsonb"`
	UserId     *uuid.UUID        `gorm:"type:uuid;uniqueIndex:idx_injectables_scope_key,priority:1"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime"`
}

func (Injectable) TableName() string {
	return "injectables"
}
