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

type IFolderService interface {
	Tree(ctx context.Context, userId uuid.UUID) (*dto.FolderTreeResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameFolderRequest) (*dto.RenameFolderResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFolderRequest) (*dto.MoveFolderResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory) IFolderService {
	return &folderService{
		uowFactory: uowFactory,
	}
}

func templateItems(templates []*entity.Template) []dto.TemplateItemResponse {
	items := make([]dto.TemplateItemResponse, 0, len(templates))
	for _, t := range templates {
		tags := make([]dto.TagItemResponse, 0, len(t.Tags))
		for _, tag := range t.Tags {
			tags = append(tags, dto.TagItemResponse{
				Id:    tag.Id,
				Name:  tag.Name,
				Color: tag.Color,
			})
		}
		items = append(items, dto.TemplateItemResponse{
			Id:          t.Id,
			Name:        t.Name,
			Description: t.Description,
			FolderId:    t.FolderId,
			Tags:        tags,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return items
}

func (s *folderService) Tree(ctx context.Context, userId uuid.UUID) (*dto.FolderTreeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uuid.UUID]*dto.FolderTreeItemResponse, len(folders))
	for _, f := range folders {
		nodes[f.Id] = &dto.FolderTreeItemResponse{
			Id:        f.Id,
			Name:      f.Name,
			Children:  make([]*dto.FolderTreeItemResponse, 0),
			Templates: make([]dto.TemplateItemResponse, 0),
		}
	}

	res := &dto.FolderTreeResponse{
		Folders: make([]*dto.FolderTreeItemResponse, 0),
		Unfiled: make([]dto.TemplateItemResponse, 0),
	}

	for _, f := range folders {
		node := nodes[f.Id]
		// Folders whose parent is gone surface at the root.
		if f.ParentId != nil {
			if parent, ok := nodes[*f.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		res.Folders = append(res.Folders, node)
	}

	for _, item := range templateItems(templates) {
		if item.FolderId != nil {
			if node, ok := nodes[*item.FolderId]; ok {
				node.Templates = append(node.Templates, item)
				continue
			}
		}
		res.Unfiled = append(res.Unfiled, item)
	}

	return res, nil
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.CreateFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.ParentId != nil {
		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.New("parent folder not found")
		}
	}

	folder := entity.Folder{
		Id:        uuid.New(),
		Name:      req.Name,
		ParentId:  req.ParentId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}

	return &dto.CreateFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Rename(ctx context.Context, userId uuid.UUID, req *dto.RenameFolderRequest) (*dto.RenameFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errors.New("folder not found")
	}

	now := time.Now()
	folder.Name = req.Name
	folder.UpdatedAt = &now

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return &dto.RenameFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFolderRequest) (*dto.MoveFolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, errors.New("folder not found")
	}

	if req.ParentId != nil {
		if *req.ParentId == folder.Id {
			return nil, errors.New("folder cannot be its own parent")
		}
		parent, err := uow.FolderRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.New("parent folder not found")
		}
		// Reject moves that would create a cycle.
		cursor := parent
		for cursor != nil && cursor.ParentId != nil {
			if *cursor.ParentId == folder.Id {
				return nil, errors.New("cannot move folder into its own subtree")
			}
			cursor, err = uow.FolderRepository().FindOne(ctx, specification.ByID{ID: *cursor.ParentId})
			if err != nil {
				return nil, err
			}
		}
	}

	now := time.Now()
	folder.ParentId = req.ParentId
	folder.UpdatedAt = &now

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		return nil, err
	}

	return &dto.MoveFolderResponse{Id: folder.Id}, nil
}

func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return errors.New("folder not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Children and templates are lifted to the deleted folder's parent.
	if err := uow.FolderRepository().ReparentChildren(ctx, id, folder.ParentId); err != nil {
		return err
	}
	if err := uow.TemplateRepository().RelocateByFolder(ctx, id, folder.ParentId); err != nil {
		return err
	}
	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
