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

type TemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateRepository(db *gorm.DB) contract.TemplateRepository {
	return &TemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(mapper.NewTagMapper()),
	}
}

func (r *TemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, template *entity.Template) error {
	m := r.mapper.ToModel(template)
	// Tags are managed through AttachTag/DetachTag, not on insert.
	if err := r.db.WithContext(ctx).Omit("Tags").Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, template *entity.Template) error {
	m := r.mapper.ToModel(template)
	if err := r.db.WithContext(ctx).Omit("Tags").Save(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.ToEntity(m)
	return nil
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Template{}, id).Error
}

func (r *TemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	var m model.Template
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	var models []*model.Template
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Tags"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TemplateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Template{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TemplateRepositoryImpl) RelocateByFolder(ctx context.Context, folderId uuid.UUID, newFolder *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.Template{}).
		Where("folder_id = ?", folderId).
		Update("folder_id", newFolder).Error
}

func (r *TemplateRepositoryImpl) AttachTag(ctx context.Context, templateId, tagId uuid.UUID) error {
	template := model.Template{Id: templateId}
	tag := model.Tag{Id: tagId}
	return r.db.WithContext(ctx).Model(&template).Association("Tags").Append(&tag)
}

func (r *TemplateRepositoryImpl) DetachTag(ctx context.Context, templateId, tagId uuid.UUID) error {
	template := model.Template{Id: templateId}
	tag := model.Tag{Id: tagId}
	return r.db.WithContext(ctx).Model(&template).Association("Tags").Delete(&tag)
}
