package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParentID filters folders by their parent; nil matches root folders.
type ByParentID struct {
	ParentID *uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", s.ParentID)
}
