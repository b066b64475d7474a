package services

import (
	"context"
	"errors"

	"github.com/infoaidtech/backend/internal/models"
	mongorepo "github.com/infoaidtech/backend/internal/repositories/mongo"
	"github.com/infoaidtech/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogUpdate struct {
	MetaTitle       *string
	MetaDescription *string
	Title           *string
	Content         *string
	Author          *string
	Category        *[]string
	Tags            *[]string
	Image           *string
	Slug            *string
	IsPublished     *bool
}

type BlogService interface {
	Create(ctx context.Context, b *models.Blog) (*models.Blog, error)
	List(ctx context.Context, opts mongorepo.BlogListOptions) ([]models.Blog, error)
	// Get resolves by id first, then by slug; NotFound only if both miss.
	Get(ctx context.Context, idOrSlug string) (*models.Blog, error)
	Update(ctx context.Context, idOrSlug string, upd BlogUpdate) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogs mongorepo.BlogRepository
}

func NewBlogService(blogs mongorepo.BlogRepository) BlogService {
	return &blogService{blogs: blogs}
}

func (s *blogService) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	const op = "BlogService.Create"

	if b.Title == "" || b.Content == "" || b.Author == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title, content, and author are required", nil)
	}
	if b.Slug == "" {
		b.Slug = utils.Slugify(b.Title)
	}
	if err := s.blogs.Create(ctx, b); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create blog", err)
	}
	return b, nil
}

func (s *blogService) List(ctx context.Context, opts mongorepo.BlogListOptions) ([]models.Blog, error) {
	const op = "BlogService.List"

	blogs, err := s.blogs.List(ctx, opts)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list blogs", err)
	}
	return blogs, nil
}

func (s *blogService) Get(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	const op = "BlogService.Get"

	b, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "blog not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get blog", err)
	}
	return b, nil
}

// resolve tries id lookup first and falls back to slug lookup.
func (s *blogService) resolve(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		b, err := s.blogs.GetByID(ctx, oid)
		if err == nil || !errors.Is(err, utils.ErrNotFound) {
			return b, err
		}
	}
	return s.blogs.GetBySlug(ctx, idOrSlug)
}

func (s *blogService) Update(ctx context.Context, idOrSlug string, upd BlogUpdate) (*models.Blog, error) {
	const op = "BlogService.Update"

	b, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "blog not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get blog", err)
	}

	if upd.MetaTitle != nil {
		b.MetaTitle = *upd.MetaTitle
	}
	if upd.MetaDescription != nil {
		b.MetaDescription = *upd.MetaDescription
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Content != nil {
		b.Content = *upd.Content
	}
	if upd.Author != nil {
		b.Author = *upd.Author
	}
	if upd.Category != nil {
		b.Category = *upd.Category
	}
	if upd.Tags != nil {
		b.Tags = *upd.Tags
	}
	if upd.Image != nil {
		b.Image = *upd.Image
	}
	if upd.Slug != nil {
		b.Slug = *upd.Slug
	}
	if upd.IsPublished != nil {
		b.IsPublished = *upd.IsPublished
	}

	if err := s.blogs.Replace(ctx, b); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update blog", err)
	}
	return b, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	const op = "BlogService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "blog not found", err)
	}
	if err := s.blogs.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "blog not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete blog", err)
	}
	return nil
}
