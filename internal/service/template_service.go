package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/pkg/docmigration"
	"contract-editor-be/pkg/doctree"

	"github.com/google/uuid"
)

type ITemplateService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.TemplateItemResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTemplateResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.UpdateTemplateResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Versions(ctx context.Context, userId uuid.UUID, templateId uuid.UUID) ([]dto.TemplateVersionItemResponse, error)
	ShowVersion(ctx context.Context, userId uuid.UUID, templateId, versionId uuid.UUID) (*dto.ShowTemplateVersionResponse, error)
	SaveDraft(ctx context.Context, userId uuid.UUID, req *dto.SaveDraftRequest) (*dto.SaveDraftResponse, error)
	Publish(ctx context.Context, userId uuid.UUID, req *dto.PublishVersionRequest) (*dto.PublishVersionResponse, error)
	AttachTag(ctx context.Context, userId uuid.UUID, req *dto.AttachTagRequest) (*dto.AttachTagResponse, error)
	DetachTag(ctx context.Context, userId uuid.UUID, templateId, tagId uuid.UUID) error
}

type templateService struct {
	uowFactory       unitofwork.RepositoryFactory
	migrations       *docmigration.Registry
	publisherService IPublisherService
}

func NewTemplateService(
	uowFactory unitofwork.RepositoryFactory,
	migrations *docmigration.Registry,
	publisherService IPublisherService,
) ITemplateService {
	return &templateService{
		uowFactory:       uowFactory,
		migrations:       migrations,
		publisherService: publisherService,
	}
}

func (s *templateService) ownedTemplate(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Template, error) {
	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, errors.New("template not found")
	}
	return template, nil
}

func (s *templateService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.TemplateItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return templateItems(templates), nil
}

func (s *templateService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, errors.New("folder not found")
		}
	}

	template := entity.Template{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		FolderId:    req.FolderId,
		UserId:      userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TemplateRepository().Create(ctx, &template); err != nil {
		return nil, err
	}

	// Every template starts with an empty draft.
	emptyDoc, _ := json.Marshal(doctree.EmptyDoc())
	version := entity.TemplateVersion{
		Id:            uuid.New(),
		TemplateId:    template.Id,
		VersionNumber: 1,
		Status:        entity.VersionStatusDraft,
		Content:       emptyDoc,
		FormatVersion: docmigration.CurrentVersion,
		CreatedAt:     time.Now(),
	}
	if err := uow.TemplateVersionRepository().Create(ctx, &version); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateTemplateResponse{Id: template.Id}, nil
}

func versionItem(v *entity.TemplateVersion) dto.TemplateVersionItemResponse {
	return dto.TemplateVersionItemResponse{
		Id:            v.Id,
		VersionNumber: v.VersionNumber,
		Status:        v.Status,
		FormatVersion: v.FormatVersion,
		CreatedAt:     v.CreatedAt,
		PublishedAt:   v.PublishedAt,
	}
}

func (s *templateService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.ownedTemplate(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	latest, err := uow.TemplateVersionRepository().FindOne(ctx,
		specification.ByTemplateID{TemplateID: id},
		specification.OrderBy{Field: "version_number", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	tags := make([]dto.TagItemResponse, 0, len(template.Tags))
	for _, tag := range template.Tags {
		tags = append(tags, dto.TagItemResponse{Id: tag.Id, Name: tag.Name, Color: tag.Color})
	}

	res := &dto.ShowTemplateResponse{
		Id:          template.Id,
		Name:        template.Name,
		Description: template.Description,
		FolderId:    template.FolderId,
		Tags:        tags,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
	if latest != nil {
		item := versionItem(latest)
		res.LatestVersion = &item
	}
	return res, nil
}

func (s *templateService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTemplateRequest) (*dto.UpdateTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := s.ownedTemplate(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.FolderId != nil {
		folder, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.FolderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, errors.New("folder not found")
		}
	}

	now := time.Now()
	template.Name = req.Name
	template.Description = req.Description
	template.FolderId = req.FolderId
	template.UpdatedAt = &now

	if err := uow.TemplateRepository().Update(ctx, template); err != nil {
		return nil, err
	}

	return &dto.UpdateTemplateResponse{Id: template.Id}, nil
}

func (s *templateService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	versions, err := uow.TemplateVersionRepository().FindAll(ctx, specification.ByTemplateID{TemplateID: id})
	if err != nil {
		return err
	}
	for _, v := range versions {
		if err := uow.TemplateVersionRepository().Delete(ctx, v.Id); err != nil {
			return err
		}
	}
	if err := uow.TemplateRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *templateService) Versions(ctx context.Context, userId uuid.UUID, templateId uuid.UUID) ([]dto.TemplateVersionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, templateId); err != nil {
		return nil, err
	}

	versions, err := uow.TemplateVersionRepository().FindAll(ctx,
		specification.ByTemplateID{TemplateID: templateId},
		specification.OrderBy{Field: "version_number", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TemplateVersionItemResponse, 0, len(versions))
	for _, v := range versions {
		result = append(result, versionItem(v))
	}
	return result, nil
}

func (s *templateService) ShowVersion(ctx context.Context, userId uuid.UUID, templateId, versionId uuid.UUID) (*dto.ShowTemplateVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, templateId); err != nil {
		return nil, err
	}

	version, err := uow.TemplateVersionRepository().FindOne(ctx,
		specification.ByID{ID: versionId},
		specification.ByTemplateID{TemplateID: templateId},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errors.New("version not found")
	}

	return &dto.ShowTemplateVersionResponse{
		Id:            version.Id,
		TemplateId:    version.TemplateId,
		VersionNumber: version.VersionNumber,
		Status:        version.Status,
		Content:       json.RawMessage(version.Content),
		FormatVersion: version.FormatVersion,
		CreatedAt:     version.CreatedAt,
		PublishedAt:   version.PublishedAt,
	}, nil
}

func (s *templateService) SaveDraft(ctx context.Context, userId uuid.UUID, req *dto.SaveDraftRequest) (*dto.SaveDraftResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, req.TemplateId); err != nil {
		return nil, err
	}

	root, err := doctree.Parse([]byte(req.Content))
	if err != nil {
		return nil, fmt.Errorf("invalid document content: %w", err)
	}
	formatVersion := docmigration.DocumentVersion(root)

	latest, err := uow.TemplateVersionRepository().FindOne(ctx,
		specification.ByTemplateID{TemplateID: req.TemplateId},
		specification.OrderBy{Field: "version_number", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// An open draft is overwritten in place; otherwise a new draft starts
	// on top of the published version.
	if latest != nil && latest.Status == entity.VersionStatusDraft {
		latest.Content = []byte(req.Content)
		latest.FormatVersion = formatVersion
		latest.UpdatedAt = &now
		if err := uow.TemplateVersionRepository().Update(ctx, latest); err != nil {
			return nil, err
		}
		return &dto.SaveDraftResponse{VersionId: latest.Id, VersionNumber: latest.VersionNumber}, nil
	}

	maxNumber, err := uow.TemplateVersionRepository().MaxVersionNumber(ctx, req.TemplateId)
	if err != nil {
		return nil, err
	}

	version := entity.TemplateVersion{
		Id:            uuid.New(),
		TemplateId:    req.TemplateId,
		VersionNumber: maxNumber + 1,
		Status:        entity.VersionStatusDraft,
		Content:       []byte(req.Content),
		FormatVersion: formatVersion,
		CreatedAt:     now,
	}
	if err := uow.TemplateVersionRepository().Create(ctx, &version); err != nil {
		return nil, err
	}

	return &dto.SaveDraftResponse{VersionId: version.Id, VersionNumber: version.VersionNumber}, nil
}

func (s *templateService) Publish(ctx context.Context, userId uuid.UUID, req *dto.PublishVersionRequest) (*dto.PublishVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, req.TemplateId); err != nil {
		return nil, err
	}

	version, err := uow.TemplateVersionRepository().FindOne(ctx,
		specification.ByID{ID: req.VersionId},
		specification.ByTemplateID{TemplateID: req.TemplateId},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errors.New("version not found")
	}
	if version.Status != entity.VersionStatusDraft {
		return nil, errors.New("only draft versions can be published")
	}

	root, err := doctree.Parse(version.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid document content: %w", err)
	}

	// Published content is always stored at the current document format.
	if s.migrations.NeedsMigration(root) {
		migrated, err := s.migrations.Migrate(root)
		if err != nil {
			return nil, err
		}
		content, err := json.Marshal(migrated)
		if err != nil {
			return nil, err
		}
		version.Content = content
	}
	version.FormatVersion = docmigration.CurrentVersion

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// There is at most one published version per template.
	current, err := uow.TemplateVersionRepository().FindOne(ctx,
		specification.ByTemplateID{TemplateID: req.TemplateId},
		specification.ByStatus{Status: entity.VersionStatusPublished},
	)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Id != version.Id {
		now := time.Now()
		current.Status = entity.VersionStatusArchived
		current.UpdatedAt = &now
		if err := uow.TemplateVersionRepository().Update(ctx, current); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	version.Status = entity.VersionStatusPublished
	version.PublishedAt = &now
	version.UpdatedAt = &now
	if err := uow.TemplateVersionRepository().Update(ctx, version); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	msg := dto.TemplateEventMessage{
		Type:       dto.EventTemplatePublished,
		TemplateId: req.TemplateId,
		VersionId:  version.Id,
		UserId:     userId,
	}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	return &dto.PublishVersionResponse{
		VersionId:     version.Id,
		VersionNumber: version.VersionNumber,
		FormatVersion: version.FormatVersion,
		PublishedAt:   version.PublishedAt,
	}, nil
}

func (s *templateService) AttachTag(ctx context.Context, userId uuid.UUID, req *dto.AttachTagRequest) (*dto.AttachTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, req.TemplateId); err != nil {
		return nil, err
	}

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.TagId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errors.New("tag not found")
	}

	if err := uow.TemplateRepository().AttachTag(ctx, req.TemplateId, req.TagId); err != nil {
		return nil, err
	}

	return &dto.AttachTagResponse{TemplateId: req.TemplateId, TagId: req.TagId}, nil
}

func (s *templateService) DetachTag(ctx context.Context, userId uuid.UUID, templateId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedTemplate(ctx, uow, userId, templateId); err != nil {
		return err
	}

	return uow.TemplateRepository().DetachTag(ctx, templateId, tagId)
}
