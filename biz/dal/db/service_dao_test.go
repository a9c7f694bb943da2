package db

import (
	"context"
	"testing"

	"github.com/atelierhq/agency_cms/biz/dal/model"
)

func TestServiceDAO_CreateKeepsPointOrder(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewServiceDAO()
	ctx := context.Background()

	service := &model.Service{
		Title:       "Web Design",
		Description: "Full site design",
		ImageURL:    "https://cdn.example.com/services/a.png",
		Points:      model.StringList{"responsive", "seo", "cms"},
	}
	if err := dao.Create(ctx, db, service); err != nil {
		t.Fatalf("Create: %v", err)
	}

	services, err := dao.ListAll(ctx, db)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	got := services[0].Points
	want := model.StringList{"responsive", "seo", "cms"}
	if len(got) != len(want) {
		t.Fatalf("points length mismatch: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point order lost at %d: %v", i, got)
		}
	}
}

func TestServiceDAO_EmptyPointsReadBackAsEmptyList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewServiceDAO()
	ctx := context.Background()

	if err := dao.Create(ctx, db, &model.Service{Title: "t", Description: "d", ImageURL: "u"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	services, err := dao.ListAll(ctx, db)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if services[0].Points == nil || len(services[0].Points) != 0 {
		t.Fatalf("expected empty non-nil points, got %#v", services[0].Points)
	}
}

func TestServiceDAO_ListAllNewestFirst(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewServiceDAO()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if err := dao.Create(ctx, db, &model.Service{Title: title, Description: "d", ImageURL: "u"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	services, err := dao.ListAll(ctx, db)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if services[0].Title != "third" || services[2].Title != "first" {
		t.Fatalf("expected newest-first order, got %s ... %s", services[0].Title, services[2].Title)
	}
}

func TestServiceDAO_DeleteIsUnconditional(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dao := NewServiceDAO()
	ctx := context.Background()

	if err := dao.DeleteByID(ctx, db, 123); err != nil {
		t.Fatalf("DeleteByID on missing row: %v", err)
	}
}
