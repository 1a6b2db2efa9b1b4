package mapper

import (
	"time"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/model"

	"gorm.io/datatypes"
)

type InjectableMapper struct{}

func NewInjectableMapper() *InjectableMapper {
	return &InjectableMapper{}
}

func (m *InjectableMapper) ToEntity(i *model.Injectable) *entity.Injectable {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Injectable{
		Id:         i.Id,
		Key:        i.Key,
		Label:      i.Label,
		DataType:   i.DataType,
		SourceType: i.SourceType,
		Metadata:   map[string]interface{}(i.Metadata),
		UserId:     i.UserId,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *InjectableMapper) ToModel(i *entity.Injectable) *model.Injectable {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Injectable{
		Id:         i.Id,
		Key:        i.Key,
		Label:      i.Label,
		DataType:   i.DataType,
		SourceType: i.SourceType,
		Metadata:   datatypes.JSONMap(i.Metadata),
		UserId:     i.UserId,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *InjectableMapper) ToEntities(injectables []*model.Injectable) []*entity.Injectable {
	entities := make([]*entity.Injectable, len(injectables))
	for i, inj := range injectables {
		entities[i] = m.ToEntity(inj)
	}
	return entities
}

func (m *InjectableMapper) ToModels(injectables []*entity.Injectable) []*model.Injectable {
	models := make([]*model.Injectable, len(injectables))
	for i, inj := range injectables {
		models[i] = m.ToModel(inj)
	}
	return models
}
