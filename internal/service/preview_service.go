package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/pkg/logger"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/pkg/condition"
	"contract-editor-be/pkg/docmigration"
	"contract-editor-be/pkg/doctree"
	"contract-editor-be/pkg/docvars"
	"contract-editor-be/pkg/preview"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IPreviewService interface {
	Variables(ctx context.Context, userId uuid.UUID, versionId uuid.UUID) (*dto.ListVariablesResponse, error)
	Preview(ctx context.Context, userId uuid.UUID, req *dto.PreviewRequest) (*dto.PreviewResponse, error)
}

type previewService struct {
	uowFactory        unitofwork.RepositoryFactory
	injectableService IInjectableService
	migrations        *docmigration.Registry
	calculators       *docvars.Calculators
	publisherService  IPublisherService
	rdb               *redis.Client
	cacheTTL          time.Duration
	logger            logger.ILogger
}

func NewPreviewService(
	uowFactory unitofwork.RepositoryFactory,
	injectableService IInjectableService,
	migrations *docmigration.Registry,
	calculators *docvars.Calculators,
	publisherService IPublisherService,
	rdb *redis.Client,
	log logger.ILogger,
) IPreviewService {
	return &previewService{
		uowFactory:        uowFactory,
		injectableService: injectableService,
		migrations:        migrations,
		calculators:       calculators,
		publisherService:  publisherService,
		rdb:               rdb,
		cacheTTL:          10 * time.Minute,
		logger:            log,
	}
}

// loadDocument fetches the version (ownership enforced through the template)
// and returns its content migrated to the current format.
func (s *previewService) loadDocument(ctx context.Context, userId, versionId uuid.UUID) (doctree.Node, *entity.TemplateVersion, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	version, err := uow.TemplateVersionRepository().FindOne(ctx, specification.ByID{ID: versionId})
	if err != nil {
		return doctree.Node{}, nil, err
	}
	if version == nil {
		return doctree.Node{}, nil, errors.New("version not found")
	}

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: version.TemplateId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return doctree.Node{}, nil, err
	}
	if template == nil {
		return doctree.Node{}, nil, errors.New("version not found")
	}

	root, err := doctree.Parse(version.Content)
	if err != nil {
		return doctree.Node{}, nil, fmt.Errorf("invalid document content: %w", err)
	}

	if s.migrations.NeedsMigration(root) {
		root, err = s.migrations.Migrate(root)
		if err != nil {
			return doctree.Node{}, nil, err
		}
	}

	return root, version, nil
}

func (s *previewService) Variables(ctx context.Context, userId uuid.UUID, versionId uuid.UUID) (*dto.ListVariablesResponse, error) {
	root, _, err := s.loadDocument(ctx, userId, versionId)
	if err != nil {
		return nil, err
	}

	catalog, err := s.injectableService.Catalog(ctx, userId)
	if err != nil {
		return nil, err
	}

	extracted := docvars.ExtractFromDocument(root)
	classified := docvars.Classify(extracted, catalog)

	res := &dto.ListVariablesResponse{
		Variables: make([]dto.PreviewVariableResponse, 0, len(classified)),
	}
	for _, v := range classified {
		res.Variables = append(res.Variables, dto.PreviewVariableResponse{
			VariableId:     v.VariableID,
			Type:           v.Type,
			Label:          v.Label,
			Format:         v.Format,
			IsInternal:     v.IsInternal,
			IsRoleVariable: v.IsRoleVariable,
			RoleId:         v.RoleID,
			PropertyKey:    v.PropertyKey,
		})
	}
	return res, nil
}

func valueMapFromRequest(values []dto.PreviewVariableValue) docvars.ValueMap {
	out := make(docvars.ValueMap, len(values))
	for _, v := range values {
		out[v.VariableId] = docvars.VariableValue{
			VariableID:   v.VariableId,
			Value:        v.Value,
			DisplayValue: v.DisplayValue,
			Format:       v.Format,
		}
	}
	return out
}

// cacheKey hashes the document content together with the supplied values so
// any change to either produces a fresh entry.
func (s *previewService) cacheKey(content []byte, values []dto.PreviewVariableValue) string {
	h := sha256.New()
	h.Write(content)
	payload, _ := json.Marshal(values)
	h.Write(payload)
	return "preview:" + hex.EncodeToString(h.Sum(nil))
}

func (s *previewService) Preview(ctx context.Context, userId uuid.UUID, req *dto.PreviewRequest) (*dto.PreviewResponse, error) {
	root, version, err := s.loadDocument(ctx, userId, req.VersionId)
	if err != nil {
		return nil, err
	}

	var key string
	if s.rdb != nil && !req.IncludeTrace {
		key = s.cacheKey(version.Content, req.Values)
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var res dto.PreviewResponse
			if json.Unmarshal(cached, &res) == nil {
				res.Cached = true
				return &res, nil
			}
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

	missingVars := docvars.Missing(classified, values)
	missing := make([]string, 0, len(missingVars))
	for _, v := range missingVars {
		missing = append(missing, v.VariableID)
	}

	var (
		resolved doctree.Node
		traces   []condition.RuleTrace
	)
	if req.IncludeTrace {
		resolved, traces = preview.TransformTrace(root, values)
	} else {
		resolved = preview.Transform(root, values)
	}

	content, err := json.Marshal(resolved)
	if err != nil {
		return nil, err
	}

	res := &dto.PreviewResponse{
		Content: content,
		Missing: missing,
	}
	for _, t := range traces {
		res.Trace = append(res.Trace, dto.RuleTraceResponse{
			RuleId:         t.RuleID,
			VariableId:     t.VariableID,
			Operator:       t.Operator,
			Actual:         t.Actual,
			Expected:       t.Expected,
			Result:         t.Result,
			CoercionFailed: t.CoercionFailed,
		})
	}

	if s.rdb != nil && key != "" {
		if payload, err := json.Marshal(res); err == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("PreviewService", "Failed to cache preview", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	msg := dto.TemplateEventMessage{
		Type:       dto.EventTemplatePreviewed,
		TemplateId: version.TemplateId,
		VersionId:  version.Id,
		UserId:     userId,
	}
	payload, _ := json.Marshal(msg)
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("PreviewService", "Failed to publish preview event", map[string]interface{}{"error": err.Error()})
	}

	return res, nil
}
