package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/model"
)

// ServiceDAO handles CRUD operations for services.
type ServiceDAO struct{}

func NewServiceDAO() *ServiceDAO { return &ServiceDAO{} }

func (dao *ServiceDAO) Create(ctx context.Context, db *gorm.DB, service *model.Service) error {
	if service == nil {
		return nil
	}
	return db.WithContext(ctx).Create(service).Error
}

func (dao *ServiceDAO) ListAll(ctx context.Context, db *gorm.DB) ([]model.Service, error) {
	var services []model.Service
	if err := db.WithContext(ctx).Order("id DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// DeleteByID is unconditional: deleting a missing id is not an error.
func (dao *ServiceDAO) DeleteByID(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&model.Service{}).Error
}
