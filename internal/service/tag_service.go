package service

import (
	"context"
	"errors"
	"time"

	"contract-editor-be/internal/dto"
	"contract-editor-be/internal/entity"
	"contract-editor-be/internal/repository/specification"
	"contract-editor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITagService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.TagItemResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.UpdateTagResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{
		uowFactory: uowFactory,
	}
}

func (s *tagService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.TagItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TagItemResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, dto.TagItemResponse{
			Id:    tag.Id,
			Name:  tag.Name,
			Color: tag.Color,
		})
	}
	return result, nil
}

func (s *tagService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TagRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("name", req.Name),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("tag name already in use")
	}

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}

	return &dto.CreateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) (*dto.UpdateTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, errors.New("tag not found")
	}

	tag.Name = req.Name
	tag.Color = req.Color

	if err := uow.TagRepository().Update(ctx, tag); err != nil {
		return nil, err
	}

	return &dto.UpdateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return errors.New("tag not found")
	}

	return uow.TagRepository().Delete(ctx, id)
}
