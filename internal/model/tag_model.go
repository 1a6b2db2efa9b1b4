package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_user_name,priority:2"`
	Color     string    `gorm:"type:varchar(20)"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_user_name,priority:1"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
