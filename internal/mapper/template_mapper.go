package mapper

import (
	"time"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/model"
)

type TemplateMapper struct {
	tagMapper *TagMapper
}

func NewTemplateMapper(tagMapper *TagMapper) *TemplateMapper {
	return &TemplateMapper{tagMapper: tagMapper}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		ts := t.UpdatedAt
		updatedAt = &ts
	}

	return &entity.Template{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		FolderId:    t.FolderId,
		UserId:      t.UserId,
		Tags:        m.tagMapper.ToEntities(t.Tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Template{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		FolderId:    t.FolderId,
		UserId:      t.UserId,
		Tags:        m.tagMapper.ToModels(t.Tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *TemplateMapper) ToEntities(templates []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, len(templates))
	for i, t := range templates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

func (m *TemplateMapper) ToModels(templates []*entity.Template) []*model.Template {
	models := make([]*model.Template, len(templates))
	for i, t := range templates {
		models[i] = m.ToModel(t)
	}
	return models
}
