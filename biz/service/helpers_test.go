package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelierhq/agency_cms/biz/dal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Banner{}, &model.Service{}, &model.Blog{}); err != nil {
		t.Fatalf("migrate tables: %v", err)
	}
	return db
}

// fakeStorage records uploads and hands back deterministic URLs.
type fakeStorage struct {
	uploads []fakeUpload
	err     error
}

type fakeUpload struct {
	folder      string
	fileName    string
	contentType string
	data        []byte
}

func (f *fakeStorage) Upload(ctx context.Context, folder, fileName, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, fakeUpload{folder: folder, fileName: fileName, contentType: contentType, data: data})
	return fmt.Sprintf("https://cdn.test/%s/upload-%d", folder, len(f.uploads)), nil
}

func (f *fakeStorage) Type() string { return "fake" }

func countRows(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
