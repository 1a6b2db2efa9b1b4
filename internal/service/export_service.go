package service

import (
	"context"
	"errors"
	"fmt"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/pkg/docmigration"
	"contract-editor-be/pkg/doctree"
	"contract-editor-be/pkg/docvars"
	"contract-editor-be/pkg/export"
	"contract-editor-be/pkg/preview"

	"github.com/google/uuid"
)

type IExportService interface {
	HTML(ctx context.Context, userId uuid.UUID, req *dto.ExportRequest) (*dto.ExportResponse, error)
}

type exportService struct {
	uowFactory        unitofwork.RepositoryFactory
	injectableService IInjectableService
	migrations        *docmigration.Registry
	calculators       *docvars.Calculators
}

func NewExportService(
	uowFactory unitofwork.RepositoryFactory,
	injectableService IInjectableService,
	migrations *docmigration.Registry,
	calculators *docvars.Calculators,
) IExportService {
	return &exportService{
		uowFactory:        uowFactory,
		injectableService: injectableService,
		migrations:        migrations,
		calculators:       calculators,
	}
}

// HTML resolves the document with the supplied values and renders it for the
// downstream PDF renderer.
func (s *exportService) HTML(ctx context.Context, userId uuid.UUID, req *dto.ExportRequest) (*dto.ExportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	version, err := uow.TemplateVersionRepository().FindOne(ctx, specification.ByID{ID: req.VersionId})
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errors.New("version not found")
	}

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: version.TemplateId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.New("version not found")
	}

	root, err := doctree.Parse(version.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid document content: %w", err)
	}
	if s.migrations.NeedsMigration(root) {
		root, err = s.migrations.Migrate(root)
		if err != nil {
			return nil, err
		}
	}

	catalog, err := s.injectableService.Catalog(ctx, userId)
	if err != nil {
		return nil, err
	}

	extracted := docvars.ExtractFromDocument(root)
	classified := docvars.Classify(extracted, catalog)
	internal := docvars.AutoFillInternal(classified, s.calculators)
	values := internal.Merge(valueMapFromRequest(req.Values))

	resolved := preview.Transform(root, values)
	return &dto.ExportResponse{HTML: export.HTML(resolved)}, nil
}
