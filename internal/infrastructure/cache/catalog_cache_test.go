package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"campo_direto/internal/domain/entities"
	mock_interfaces "campo_direto/internal/usecase/interfaces/mocks"
)

func TestCatalogCache_GetCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeated reads from the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().GetCatalog(ctx, "cat-1").Return(entities.Catalog{ID: "cat-1"}, nil).Times(1)

		c := newCatalogCache(repo, time.Minute, time.Now)
		for i := 0; i < 3; i++ {
			cat, err := c.GetCatalog(ctx, "cat-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cat.ID != "cat-1" {
				t.Fatalf("unexpected catalog: %+v", cat)
			}
		}
	})

	t.Run("refetches after the ttl elapses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().GetCatalog(ctx, "cat-1").Return(entities.Catalog{ID: "cat-1"}, nil).Times(2)

		now := time.Now()
		c := newCatalogCache(repo, time.Minute, func() time.Time { return now })

		if _, err := c.GetCatalog(ctx, "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		now = now.Add(2 * time.Minute)
		if _, err := c.GetCatalog(ctx, "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("does not cache missing catalogs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().GetCatalog(ctx, "ghost").Return(entities.Catalog{}, nil).Times(2)

		c := newCatalogCache(repo, time.Minute, time.Now)
		for i := 0; i < 2; i++ {
			cat, err := c.GetCatalog(ctx, "ghost")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cat.ID != "" {
				t.Fatalf("expected zero-value catalog, got %+v", cat)
			}
		}
	})
}

func TestCatalogCache_ListBundlesBySupplier(t *testing.T) {
	ctx := context.Background()

	t.Run("caches per supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().ListBundlesBySupplier(ctx, "sup-1").
			Return([]entities.Bundle{{ID: "bun-1"}}, nil).Times(1)
		repo.EXPECT().ListBundlesBySupplier(ctx, "sup-2").
			Return([]entities.Bundle{}, nil).Times(1)

		c := newCatalogCache(repo, time.Minute, time.Now)
		for i := 0; i < 2; i++ {
			bundles, err := c.ListBundlesBySupplier(ctx, "sup-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(bundles) != 1 || bundles[0].ID != "bun-1" {
				t.Fatalf("unexpected bundles: %+v", bundles)
			}
		}
		if _, err := c.ListBundlesBySupplier(ctx, "sup-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := c.ListBundlesBySupplier(ctx, "sup-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
