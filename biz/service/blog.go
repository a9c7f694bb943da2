package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/db"
	"github.com/atelierhq/agency_cms/biz/dal/model"
	"github.com/atelierhq/agency_cms/pkg/storage"
)

const blogFolder = "blogs"

// CreateBlogInput carries the blog creation form. Slug is caller-supplied
// and not checked for uniqueness.
type CreateBlogInput struct {
	Title       string
	Description string
	Slug        string
	Image       *ImageFile
}

// Blogs orchestrates blog post mutations.
type Blogs struct {
	db    *gorm.DB
	dao   *db.BlogDAO
	store storage.Storage
}

func NewBlogs(gdb *gorm.DB, store storage.Storage) *Blogs {
	return &Blogs{db: gdb, dao: db.NewBlogDAO(), store: store}
}

// Create validates the form, uploads the mandatory image and inserts a new
// active blog post.
func (s *Blogs) Create(ctx context.Context, in CreateBlogInput) (*model.Blog, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, newValidationError("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, newValidationError("Description is required")
	}
	if in.Image == nil || len(in.Image.Data) == 0 {
		return nil, newValidationError("Blog image is required")
	}

	url, err := s.store.Upload(ctx, blogFolder, in.Image.Name, in.Image.ContentType, in.Image.Data)
	if err != nil {
		return nil, fmt.Errorf("upload blog image: %w", err)
	}

	blog := &model.Blog{
		Title:       in.Title,
		Description: in.Description,
		Slug:        in.Slug,
		ImageURL:    url,
		IsActive:    true,
	}
	if err := s.dao.Create(ctx, s.db, blog); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return blog, nil
}

// ListAll returns every blog post, newest first. Administrative listing.
func (s *Blogs) ListAll(ctx context.Context) ([]model.Blog, error) {
	return s.dao.ListAll(ctx, s.db)
}

// ListActive returns only active posts, newest first. Public listing.
func (s *Blogs) ListActive(ctx context.Context) ([]model.Blog, error) {
	return s.dao.ListActive(ctx, s.db)
}

// Toggle flips is_active at the store level and returns the updated post.
// A missing row yields a nil post, mirroring the API's historical contract.
func (s *Blogs) Toggle(ctx context.Context, id uint) (*model.Blog, error) {
	blog, err := s.dao.ToggleActive(ctx, s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("toggle blog: %w", err)
	}
	return blog, nil
}

// Delete removes a blog post; the uploaded image stays in object storage.
func (s *Blogs) Delete(ctx context.Context, id uint) error {
	return s.dao.DeleteByID(ctx, s.db, id)
}
