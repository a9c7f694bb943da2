package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/db"
	"github.com/atelierhq/agency_cms/biz/dal/model"
	"github.com/atelierhq/agency_cms/pkg/storage"
)

const serviceFolder = "services"

// CreateServiceInput carries the service creation form. Points holds the raw
// form values; NormalizePoints resolves their shape.
type CreateServiceInput struct {
	Title       string
	Description string
	Points      []string
	Image       *ImageFile
}

// Services orchestrates mutations of the offered-services catalog.
type Services struct {
	db    *gorm.DB
	dao   *db.ServiceDAO
	store storage.Storage
}

func NewServices(gdb *gorm.DB, store storage.Storage) *Services {
	return &Services{db: gdb, dao: db.NewServiceDAO(), store: store}
}

// Create validates the form, uploads the mandatory image and inserts the
// service record with normalized points.
func (s *Services) Create(ctx context.Context, in CreateServiceInput) (*model.Service, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, newValidationError("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, newValidationError("Description is required")
	}
	if in.Image == nil || len(in.Image.Data) == 0 {
		return nil, newValidationError("Service image is required")
	}

	url, err := s.store.Upload(ctx, serviceFolder, in.Image.Name, in.Image.ContentType, in.Image.Data)
	if err != nil {
		return nil, fmt.Errorf("upload service image: %w", err)
	}

	service := &model.Service{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    url,
		Points:      model.StringList(NormalizePoints(in.Points)),
	}
	if err := s.dao.Create(ctx, s.db, service); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return service, nil
}

// List returns all services, newest first.
func (s *Services) List(ctx context.Context) ([]model.Service, error) {
	return s.dao.ListAll(ctx, s.db)
}

// Delete removes a service; the uploaded image is left in object storage.
func (s *Services) Delete(ctx context.Context, id uint) error {
	return s.dao.DeleteByID(ctx, s.db, id)
}
