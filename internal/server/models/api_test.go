package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophstore/internal/api"
	"github.com/google/go-cmp/cmp"
)

func TestSnapshotToAPI(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	in := []*Product{
		{ID: "b", Name: "Chair", Price: 15, OwnerID: "u1", CreatedAt: now},
		{ID: "a", Name: "Lamp", Price: 9.99, Sold: true, ImageRef: "products/x", OwnerID: "u1", CreatedAt: now.Add(-time.Hour)},
	}

	want := &api.ProductSnapshot{Products: []*api.Product{
		{ID: "b", Name: "Chair", Price: 15, OwnerID: "u1", CreatedAt: now},
		{ID: "a", Name: "Lamp", Price: 9.99, Sold: true, ImageRef: "products/x", OwnerID: "u1", CreatedAt: now.Add(-time.Hour)},
	}}

	if diff := cmp.Diff(want, SnapshotToAPI(in)); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotToAPI_EmptyIsNotNil(t *testing.T) {
	got := SnapshotToAPI(nil)
	if got.Products == nil || len(got.Products) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got.Products)
	}
}
