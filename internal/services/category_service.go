package services

import (
	"context"
	"errors"

	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Update(ctx context.Context, id string, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories mongorepo.CategoryRepository
}

func NewCategoryService(categories mongorepo.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	const op = "CategoryService.Create"

	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	c := &models.Category{Name: name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create category", err)
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	const op = "CategoryService.List"

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list categories", err)
	}
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	const op = "CategoryService.Get"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "category not found", err)
	}
	c, err := s.categories.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "category not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get category", err)
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, name string) (*models.Category, error) {
	const op = "CategoryService.Update"

	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	if err := s.categories.Replace(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update category", err)
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	const op = "CategoryService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "category not found", err)
	}
	if err := s.categories.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "category not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete category", err)
	}
	return nil
}
