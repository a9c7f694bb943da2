package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/db"
	"github.com/atelierhq/agency_cms/biz/dal/model"
	"github.com/atelierhq/agency_cms/pkg/storage"
)

const bannerFolder = "banners"

// ImageFile is a fully buffered multipart upload.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Banners orchestrates banner mutations: upload the image first, then issue
// a single relational write with the returned URL. The two steps are
// sequential, not transactional; a store failure after a successful upload
// leaves the remote object orphaned and surfaces the error to the caller.
type Banners struct {
	db    *gorm.DB
	dao   *db.BannerDAO
	store storage.Storage
}

func NewBanners(gdb *gorm.DB, store storage.Storage) *Banners {
	return &Banners{db: gdb, dao: db.NewBannerDAO(), store: store}
}

// Create uploads the mandatory image and inserts a new active banner.
func (s *Banners) Create(ctx context.Context, image *ImageFile) (*model.Banner, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, newValidationError("Image is required")
	}

	url, err := s.store.Upload(ctx, bannerFolder, image.Name, image.ContentType, image.Data)
	if err != nil {
		return nil, fmt.Errorf("upload banner image: %w", err)
	}

	banner := &model.Banner{ImageURL: url, IsActive: true}
	if err := s.dao.Create(ctx, s.db, banner); err != nil {
		return nil, fmt.Errorf("insert banner: %w", err)
	}
	return banner, nil
}

// UpdateBannerInput carries the banner update form. ImageURL is the
// caller-resent current URL, kept verbatim unless a new Image replaces it.
type UpdateBannerInput struct {
	ID       uint
	IsActive bool
	ImageURL string
	Image    *ImageFile
}

// Update replaces image_url and is_active for one banner. A missing row is
// not an error: the result is nil, mirroring the API's historical contract.
func (s *Banners) Update(ctx context.Context, in UpdateBannerInput) (*model.Banner, error) {
	imageURL := in.ImageURL
	if in.Image != nil && len(in.Image.Data) > 0 {
		url, err := s.store.Upload(ctx, bannerFolder, in.Image.Name, in.Image.ContentType, in.Image.Data)
		if err != nil {
			return nil, fmt.Errorf("upload banner image: %w", err)
		}
		imageURL = url
	}

	err := s.dao.Update(ctx, s.db, in.ID, imageURL, in.IsActive)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return s.dao.GetByID(ctx, s.db, in.ID)
}

// List returns all banners, newest first.
func (s *Banners) List(ctx context.Context) ([]model.Banner, error) {
	return s.dao.ListAll(ctx, s.db)
}

// Get returns a single banner or ErrNotFound.
func (s *Banners) Get(ctx context.Context, id uint) (*model.Banner, error) {
	banner, err := s.dao.GetByID(ctx, s.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete removes a banner. The stored object is not removed from object
// storage; orphaned assets are accepted.
func (s *Banners) Delete(ctx context.Context, id uint) error {
	return s.dao.DeleteByID(ctx, s.db, id)
}
