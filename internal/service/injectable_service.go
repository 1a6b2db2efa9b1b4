package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"
	"contract-editor-be/pkg/docvars"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IInjectableService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.InjectableItemResponse, error)
	Catalog(ctx context.Context, userId uuid.UUID) (docvars.Catalog, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInjectableRequest) (*dto.CreateInjectableResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInjectableRequest) (*dto.UpdateInjectableResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type injectableService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewInjectableService(uowFactory unitofwork.RepositoryFactory) IInjectableService {
	// Catalog reads dominate writes; 5 minutes keeps the editor snappy
	// without letting stale entries linger after an update.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &injectableService{
		uowFactory: uowFactory,
		cache:      c,
	}
}

func catalogCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("injectables:%s", userId)
}

func (s *injectableService) visible(ctx context.Context, userId uuid.UUID) ([]*entity.Injectable, error) {
	key := catalogCacheKey(userId)
	if x, found := s.cache.Get(key); found {
		return x.([]*entity.Injectable), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	injectables, err := uow.InjectableRepository().FindAll(ctx,
		specification.VisibleTo{UserID: userId},
		specification.OrderBy{Field: "key"},
	)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, injectables, cache.DefaultExpiration)
	return injectables, nil
}

func (s *injectableService) invalidate(userId uuid.UUID) {
	s.cache.Delete(catalogCacheKey(userId))
}

func (s *injectableService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.InjectableItemResponse, error) {
	injectables, err := s.visible(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InjectableItemResponse, 0, len(injectables))
	for _, inj := range injectables {
		result = append(result, dto.InjectableItemResponse{
			Id:         inj.Id,
			Key:        inj.Key,
			Label:      inj.Label,
			DataType:   inj.DataType,
			SourceType: inj.SourceType,
			Metadata:   inj.Metadata,
			IsSystem:   inj.UserId == nil,
			CreatedAt:  inj.CreatedAt,
		})
	}
	return result, nil
}

// Catalog adapts the stored entries to the form the variable resolver
// consumes.
func (s *injectableService) Catalog(ctx context.Context, userId uuid.UUID) (docvars.Catalog, error) {
	injectables, err := s.visible(ctx, userId)
	if err != nil {
		return nil, err
	}

	entries := make([]docvars.Injectable, 0, len(injectables))
	for _, inj := range injectables {
		entries = append(entries, docvars.Injectable{
			Key:        inj.Key,
			Label:      inj.Label,
			DataType:   inj.DataType,
			SourceType: inj.SourceType,
			Metadata:   inj.Metadata,
		})
	}
	return docvars.NewCatalog(entries), nil
}

func (s *injectableService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInjectableRequest) (*dto.CreateInjectableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.InjectableRepository().FindOne(ctx,
		specification.ByKey{Key: req.Key},
		specification.VisibleTo{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("injectable key already in use")
	}

	uid := userId
	injectable := entity.Injectable{
		Id:         uuid.New(),
		Key:        req.Key,
		Label:      req.Label,
		DataType:   req.DataType,
		SourceType: docvars.SourceTypeExternal,
		Metadata:   req.Metadata,
		UserId:     &uid,
		CreatedAt:  time.Now(),
	}

	if err := uow.InjectableRepository().Create(ctx, &injectable); err != nil {
		return nil, err
	}

	s.invalidate(userId)
	return &dto.CreateInjectableResponse{Id: injectable.Id}, nil
}

func (s *injectableService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInjectableRequest) (*dto.UpdateInjectableResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	injectable, err := uow.InjectableRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if injectable == nil {
		return nil, errors.New("injectable not found")
	}

	now := time.Now()
	injectable.Label = req.Label
	injectable.DataType = req.DataType
	injectable.Metadata = req.Metadata
	injectable.UpdatedAt = &now

	if err := uow.InjectableRepository().Update(ctx, injectable); err != nil {
		return nil, err
	}

	s.invalidate(userId)
	return &dto.UpdateInjectableResponse{Id: injectable.Id}, nil
}

func (s *injectableService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	injectable, err := uow.InjectableRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if injectable == nil {
		return errors.New("injectable not found")
	}

	if err := uow.InjectableRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(userId)
	return nil
}
