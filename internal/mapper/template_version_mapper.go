package mapper

import (
	"time"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/model"

	"gorm.io/datatypes"
)

type TemplateVersionMapper struct{}

func NewTemplateVersionMapper() *TemplateVersionMapper {
	return &TemplateVersionMapper{}
}

func (m *TemplateVersionMapper) ToEntity(v *model.TemplateVersion) *entity.TemplateVersion {
	if v == nil {
		return nil
	}

	var updatedAt *time.Time
	if !v.UpdatedAt.IsZero() {
		t := v.UpdatedAt
		updatedAt = &t
	}

	return &entity.TemplateVersion{
		Id:            v.Id,
		TemplateId:    v.TemplateId,
		VersionNumber: v.VersionNumber,
		Status:        v.Status,
		Content:       []byte(v.Content),
		FormatVersion: v.FormatVersion,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     updatedAt,
		PublishedAt:   v.PublishedAt,
	}
}

func (m *TemplateVersionMapper) ToModel(v *entity.TemplateVersion) *model.TemplateVersion {
	if v == nil {
		return nil
	}

	var updatedAt time.Time
	if v.UpdatedAt != nil {
		updatedAt = *v.UpdatedAt
	}

	return &model.TemplateVersion{
		Id:            v.Id,
		TemplateId:    v.TemplateId,
		VersionNumber: v.VersionNumber,
		Status:        v.Status,
		Content:       datatypes.JSON(v.Content),
		FormatVersion: v.FormatVersion,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     updatedAt,
		PublishedAt:   v.PublishedAt,
	}
}

func (m *TemplateVersionMapper) ToEntities(versions []*model.TemplateVersion) []*entity.TemplateVersion {
	entities := make([]*entity.TemplateVersion, len(versions))
	for i, v := range versions {
		entities[i] = m.ToEntity(v)
	}
	return entities
}

func (m *TemplateVersionMapper) ToModels(versions []*entity.TemplateVersion) []*model.TemplateVersion {
	models := make([]*model.TemplateVersion, len(versions))
	for i, v := range versions {
		models[i] = m.ToModel(v)
	}
	return models
}
