package unitofwork

import (
	"context"

	"contract-editor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FolderRepository() contract.FolderRepository
	TemplateRepository() contract.TemplateRepository
	TemplateVersionRepository() contract.TemplateVersionRepository
	TagRepository() contract.TagRepository
	InjectableRepository() contract.InjectableRepository
}
