package implementation

import (
	"context"
	"errors"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/mapper"
	"contract-editor-be/internal/model"
	"contract-editor-be/internal/repository/contract"
	"contract-editor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InjectableRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InjectableMapper
}

func NewInjectableRepository(db *gorm.DB) contract.InjectableRepository {
	return &InjectableRepositoryImpl{
		db:     db,
		mapper: mapper.NewInjectableMapper(),
	}
}

func (r *InjectableRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InjectableRepositoryImpl) Create(ctx context.Context, injectable *entity.Injectable) error {
	m := r.mapper.ToModel(injectable)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*injectable = *r.mapper.ToEntity(m)
	return nil
}

func (r *InjectableRepositoryImpl) Update(ctx context.Context, injectable *entity.Injectable) error {
	m := r.mapper.ToModel(injectable)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*injectable = *r.mapper.ToEntity(m)
	return nil
}

func (r *InjectableRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Injectable{}, id).Error
}

func (r *InjectableRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Injectable, error) {
	var m model.Injectable
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InjectableRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Injectable, error) {
	var models []*model.Injectable
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InjectableRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Injectable{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
