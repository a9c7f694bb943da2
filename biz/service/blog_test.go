package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelierhq/agency_cms/biz/dal/model"
	"github.com/atelierhq/agency_cms/biz/service"
)

func TestBlogsCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db := newTestDB(t)
		store := &fakeStorage{}
		blogs := service.NewBlogs(db, store)

		created, err := blogs.Create(ctx, service.CreateBlogInput{
			Title:       "Launch",
			Description: "We launched",
			Slug:        "launch",
			Image:       &service.ImageFile{Name: "cover.webp", ContentType: "image/webp", Data: []byte("webp")},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.ImageURL != "https://cdn.test/blogs/upload-1" {
			t.Fatalf("image_url %q does not match upload result", created.ImageURL)
		}
		if !created.IsActive {
			t.Fatalf("new blog must be active")
		}
		if created.Slug != "launch" {
			t.Fatalf("slug not preserved: %q", created.Slug)
		}
	})

	t.Run("MissingImage", func(t *testing.T) {
		db := newTestDB(t)
		store := &fakeStorage{}
		blogs := service.NewBlogs(db, store)

		_, err := blogs.Create(ctx, service.CreateBlogInput{Title: "t", Description: "d", Slug: "s"})
		var ve *service.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(store.uploads) != 0 || countRows(t, db, &model.Blog{}) != 0 {
			t.Fatalf("nothing may be written without an image")
		}
	})

	t.Run("MissingDescription", func(t *testing.T) {
		db := newTestDB(t)
		blogs := service.NewBlogs(db, &fakeStorage{})

		_, err := blogs.Create(ctx, service.CreateBlogInput{
			Title: "t",
			Slug:  "s",
			Image: &service.ImageFile{Name: "a.png", Data: []byte("x")},
		})
		var ve *service.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestBlogsToggle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	blogs := service.NewBlogs(db, &fakeStorage{})

	created, err := blogs.Create(ctx, service.CreateBlogInput{
		Title:       "t",
		Description: "d",
		Slug:        "s",
		Image:       &service.ImageFile{Name: "a.png", Data: []byte("x")},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	once, err := blogs.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if once.IsActive {
		t.Fatalf("expected first toggle to deactivate")
	}

	twice, err := blogs.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if twice.IsActive != created.IsActive {
		t.Fatalf("two toggles must restore the original state")
	}

	missing, err := blogs.Toggle(ctx, 9999)
	if err != nil {
		t.Fatalf("Toggle on missing id: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil blog for missing id, got %+v", missing)
	}
}

func TestBlogsListings(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	blogs := service.NewBlogs(db, &fakeStorage{})

	var ids []uint
	for _, title := range []string{"one", "two", "three"} {
		created, err := blogs.Create(ctx, service.CreateBlogInput{
			Title:       title,
			Description: "d",
			Slug:        title,
			Image:       &service.ImageFile{Name: "a.png", Data: []byte("x")},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, created.ID)
		// Spread creation timestamps so created_at ordering is deterministic.
		offset := time.Duration(len(ids)) * time.Hour
		if err := db.Model(&model.Blog{}).Where("id = ?", created.ID).
			UpdateColumn("created_at", created.CreatedAt.Add(-offset)).Error; err != nil {
			t.Fatalf("adjust created_at: %v", err)
		}
	}

	if _, err := blogs.Toggle(ctx, ids[1]); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	all, err := blogs.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 blogs, got %d", len(all))
	}
	if all[0].Title != "one" || all[2].Title != "three" {
		t.Fatalf("expected created_at descending order, got %s ... %s", all[0].Title, all[2].Title)
	}

	active, err := blogs.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active blogs, got %d", len(active))
	}
	for _, blog := range active {
		if blog.Title == "two" {
			t.Fatalf("toggled-off blog leaked into public listing")
		}
	}
}
