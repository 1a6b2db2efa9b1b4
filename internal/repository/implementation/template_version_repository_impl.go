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

type TemplateVersionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateVersionMapper
}

func NewTemplateVersionRepository(db *gorm.DB) contract.TemplateVersionRepository {
	return &TemplateVersionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateVersionMapper(),
	}
}

func (r *TemplateVersionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateVersionRepositoryImpl) Create(ctx context.Context, version *entity.TemplateVersion) error {
	m := r.mapper.ToModel(version)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateVersionRepositoryImpl) Update(ctx context.Context, version *entity.TemplateVersion) error {
	m := r.mapper.ToModel(version)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateVersionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TemplateVersion{}, id).Error
}

func (r *TemplateVersionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TemplateVersion, error) {
	var m model.TemplateVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TemplateVersionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TemplateVersion, error) {
	var models []*model.TemplateVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TemplateVersionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TemplateVersion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TemplateVersionRepositoryImpl) MaxVersionNumber(ctx context.Context, templateId uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.TemplateVersion{}).
		Where("template_id = ?", templateId).
		Select("MAX(version_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
