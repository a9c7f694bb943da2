package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelierhq/agency_cms/biz/dal/model"
)

// BlogDAO handles CRUD operations for blog posts.
type BlogDAO struct{}

func NewBlogDAO() *BlogDAO { return &BlogDAO{} }

func (dao *BlogDAO) Create(ctx context.Context, db *gorm.DB, blog *model.Blog) error {
	if blog == nil {
		return nil
	}
	return db.WithContext(ctx).Create(blog).Error
}

func (dao *BlogDAO) ListAll(ctx context.Context, db *gorm.DB) ([]model.Blog, error) {
	var blogs []model.Blog
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (dao *BlogDAO) ListActive(ctx context.Context, db *gorm.DB) ([]model.Blog, error) {
	var blogs []model.Blog
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// ToggleActive flips is_active at the store level so concurrent toggles never
// lose a flip. Returns gorm.ErrRecordNotFound when no row matches.
func (dao *BlogDAO) ToggleActive(ctx context.Context, db *gorm.DB, id uint) (*model.Blog, error) {
	result := db.WithContext(ctx).
		Model(&model.Blog{}).
		Where("id = ?", id).
		UpdateColumn("is_active", gorm.Expr("NOT is_active"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var blog model.Blog
	if err := db.WithContext(ctx).Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteByID is unconditional: deleting a missing id is not an error.
func (dao *BlogDAO) DeleteByID(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&model.Blog{}).Error
}
