package contract

import (
	"context"

	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InjectableRepository interface {
	Create(ctx context.Context, injectable *entity.Injectable) error
	Update(ctx context.Context, injectable *entity.Injectable) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Injectable, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Injectable, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
