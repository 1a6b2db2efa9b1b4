package contract

import (
	"context"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateVersionRepository interface {
	Create(ctx context.Context, version *entity.TemplateVersion) error
	Update(ctx context.Context, version *entity.TemplateVersion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TemplateVersion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TemplateVersion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MaxVersionNumber returns 0 when the template has no versions yet.
	MaxVersionNumber(ctx context.Context, templateId uuid.UUID) (int, error)
}
