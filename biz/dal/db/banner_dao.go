package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/model"
)

// BannerDAO handles CRUD operations for banners.
type BannerDAO struct{}

func NewBannerDAO() *BannerDAO { return &BannerDAO{} }

func (dao *BannerDAO) Create(ctx context.Context, db *gorm.DB, banner *model.Banner) error {
	if banner == nil {
		return nil
	}
	return db.WithContext(ctx).Create(banner).Error
}

// Update overwrites image_url and is_active for the given id. A map update is
// used so a false is_active is not skipped as a zero value. Returns
// gorm.ErrRecordNotFound when no row matches.
func (dao *BannerDAO) Update(ctx context.Context, db *gorm.DB, id uint, imageURL string, isActive bool) error {
	result := db.WithContext(ctx).
		Model(&model.Banner{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"image_url": imageURL,
			"is_active": isActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dao *BannerDAO) GetByID(ctx context.Context, db *gorm.DB, id uint) (*model.Banner, error) {
	var banner model.Banner
	if err := db.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (dao *BannerDAO) ListAll(ctx context.Context, db *gorm.DB) ([]model.Banner, error) {
	var banners []model.Banner
	if err := db.WithContext(ctx).Order("id DESC").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// DeleteByID is unconditional: deleting a missing id is not an error.
func (dao *BannerDAO) DeleteByID(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&model.Banner{}).Error
}
