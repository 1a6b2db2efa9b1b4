package contract

import (
	"context"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	Update(ctx context.Context, template *entity.Template) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// RelocateByFolder moves every template in folderId to newFolder (nil for unfiled).
	RelocateByFolder(ctx context.Context, folderId uuid.UUID, newFolder *uuid.UUID) error
	AttachTag(ctx context.Context, templateId, tagId uuid.UUID) error
	DetachTag(ctx context.Context, templateId, tagId uuid.UUID) error
}
