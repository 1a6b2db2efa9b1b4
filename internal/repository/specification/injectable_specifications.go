package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByKey filters injectables by their catalog key.
type ByKey struct {
	Key string
}

func (s ByKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

// SystemScoped matches shared catalog entries that belong to no user.
type SystemScoped struct{}

func (s SystemScoped) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL")
}

// VisibleTo matches system entries plus the user's own entries.
type VisibleTo struct {
	UserID uuid.UUID
}

func (s VisibleTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IS NULL OR user_id = ?", s.UserID)
}
