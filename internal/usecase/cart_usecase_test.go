package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"
	mock_interfaces "campo_direto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func openOrder() entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:                  "ord-1",
		ProducerID:          "prd-1",
		SupplierID:          "sup-1",
		DistributionPointID: "dp-1",
		CartStatus:          entities.CartStatusAberto,
		AllowNegotiation:    true,
		InteractionDeadline: now.Add(48 * time.Hour),
		Version:             3,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func currentCatalog() entities.Catalog {
	cat := testCatalog()
	cat.StartDate = time.Now().UTC().Add(-24 * time.Hour)
	cat.EndDate = nil
	return cat
}

func echoUpdate(repo *mock_interfaces.MockIOrderRepository) {
	repo.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order, expected int64) (entities.Order, error) {
			o.Version = expected + 1
			return o, nil
		},
	)
}

func TestCartUseCase_CreateCart(t *testing.T) {
	t.Run("missing parties", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.CreateCart(context.Background(), " ", "sup-1", "dp-1"); !errors.Is(err, ErrInvalidParty) {
			t.Fatalf("expected ErrInvalidParty, got %v", err)
		}
	})

	t.Run("open cart already held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrAlreadyExists)

		if _, err := uc.CreateCart(context.Background(), "prd-1", "sup-1", "dp-1"); !errors.Is(err, ErrOpenCartExists) {
			t.Fatalf("expected ErrOpenCartExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.CartStatus != entities.CartStatusAberto || o.Version != 1 {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !o.InteractionDeadline.After(time.Now().UTC()) {
					t.Fatalf("expected future deadline")
				}
				return o, nil
			},
		)

		o, err := uc.CreateCart(context.Background(), " prd-1 ", "sup-1", "dp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ProducerID != "prd-1" || o.SupplierID != "sup-1" {
			t.Fatalf("unexpected parties: %+v", o)
		}
	})
}

func TestCartUseCase_GetCart(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-x").Return(entities.Order{}, nil)

		if _, err := uc.GetCart(context.Background(), "ord-x"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("expiry observed lazily", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		o.InteractionDeadline = time.Now().UTC().Add(-time.Hour)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		got, err := uc.GetCart(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CartStatus != entities.CartStatusExpirado {
			t.Fatalf("expected expirado, got %s", got.CartStatus)
		}
	})
}

func TestCartUseCase_AddItem(t *testing.T) {
	t.Run("blank item references", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.AddItem(context.Background(), "ord-1", " ", "cat-1", 5, testProducer()); !errors.Is(err, ErrInvalidItemRef) {
			t.Fatalf("expected ErrInvalidItemRef, got %v", err)
		}
		if _, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "", 5, testProducer()); !errors.Is(err, ErrInvalidItemRef) {
			t.Fatalf("expected ErrInvalidItemRef, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 0, testProducer()); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("cart not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		o.CartStatus = entities.CartStatusAceito
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		if _, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 5, testProducer()); !errors.Is(err, ErrCartNotOpen) {
			t.Fatalf("expected ErrCartNotOpen, got %v", err)
		}
	})

	t.Run("deadline passed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		o.InteractionDeadline = time.Now().UTC().Add(-time.Minute)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		if _, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 5, testProducer()); !errors.Is(err, ErrCartExpired) {
			t.Fatalf("expected ErrCartExpired, got %v", err)
		}
	})

	t.Run("catalog scope mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalogs := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(orders, catalogs)

		cat := currentCatalog()
		cat.DistributionPointID = "dp-other"
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(openOrder(), nil)
		catalogs.EXPECT().GetCatalog(gomock.Any(), "cat-1").Return(cat, nil)

		if _, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 5, testProducer()); !errors.Is(err, ErrCatalogScopeMismatch) {
			t.Fatalf("expected ErrCatalogScopeMismatch, got %v", err)
		}
	})

	t.Run("new item resolved and totals folded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalogs := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(orders, catalogs)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(openOrder(), nil)
		catalogs.EXPECT().GetCatalog(gomock.Any(), "cat-1").Return(currentCatalog(), nil)
		catalogs.EXPECT().ListBundlesBySupplier(gomock.Any(), "sup-1").Return(nil, nil)
		echoUpdate(orders)

		o, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 10, testProducer())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(o.Items) != 1 {
			t.Fatalf("expected one item, got %d", len(o.Items))
		}
		item := o.Items[0]
		if item.UnitPrice != 90 || item.FinalValue != 900 {
			t.Fatalf("expected tier price 90/total 900, got %.0f/%.0f", item.UnitPrice, item.FinalValue)
		}
		if o.Total != 900 || o.ItemCount != 1 {
			t.Fatalf("unexpected totals: %.0f/%d", o.Total, o.ItemCount)
		}
	})

	t.Run("merge re-resolves tier for summed quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalogs := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(orders, catalogs)

		o := openOrder()
		o.Items = []entities.OrderItem{{
			ID: "it-1", ProductID: "prod-1", CategoryID: "sementes", CatalogID: "cat-1",
			Quantity: 5, UnitPrice: 100, FinalValue: 500,
		}}
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		catalogs.EXPECT().GetCatalog(gomock.Any(), "cat-1").Return(currentCatalog(), nil)
		catalogs.EXPECT().ListBundlesBySupplier(gomock.Any(), "sup-1").Return(nil, nil)
		echoUpdate(orders)

		got, err := uc.AddItem(context.Background(), "ord-1", "prod-1", "cat-1", 5, testProducer())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 1 {
			t.Fatalf("expected merged line, got %d items", len(got.Items))
		}
		// 5+5 crosses into the [10,50) band.
		if got.Items[0].Quantity != 10 || got.Items[0].UnitPrice != 90 {
			t.Fatalf("expected qty 10 at price 90, got %d at %.0f", got.Items[0].Quantity, got.Items[0].UnitPrice)
		}
		if got.Total != 900 {
			t.Fatalf("expected total 900, got %.0f", got.Total)
		}
	})
}

func TestCartUseCase_UpdateQuantity(t *testing.T) {
	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.UpdateQuantity(context.Background(), "ord-1", "it-1", -2, testProducer()); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(openOrder(), nil)

		if _, err := uc.UpdateQuantity(context.Background(), "ord-1", "it-x", 5, testProducer()); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("tier changes with quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalogs := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(orders, catalogs)

		o := openOrder()
		o.Items = []entities.OrderItem{{
			ID: "it-1", ProductID: "prod-1", CategoryID: "sementes", CatalogID: "cat-1",
			Quantity: 10, UnitPrice: 90, FinalValue: 900,
		}}
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		catalogs.EXPECT().GetCatalog(gomock.Any(), "cat-1").Return(currentCatalog(), nil)
		catalogs.EXPECT().ListBundlesBySupplier(gomock.Any(), "sup-1").Return(nil, nil)
		echoUpdate(orders)

		got, err := uc.UpdateQuantity(context.Background(), "ord-1", "it-1", 60, testProducer())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Items[0].UnitPrice != 80 || got.Items[0].FinalValue != 4800 {
			t.Fatalf("expected 60×80=4800, got %.0f×%.0f", got.Items[0].UnitPrice, got.Items[0].FinalValue)
		}
		if got.Total != 4800 {
			t.Fatalf("total %.0f diverged from item sum", got.Total)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCartUseCase(orders, nil)

	o := openOrder()
	o.Items = []entities.OrderItem{{ID: "it-1", Quantity: 2, UnitPrice: 10, FinalValue: 20}}
	o.Total = 20
	o.ItemCount = 1
	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
	echoUpdate(orders)

	got, err := uc.RemoveItem(context.Background(), "ord-1", "it-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 0 || got.Total != 0 || got.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}

	t.Run("missing item", func(t *testing.T) {
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(openOrder(), nil)
		if _, err := uc.RemoveItem(context.Background(), "ord-1", "it-x"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestCartUseCase_RecalculateTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCartUseCase(orders, nil)

	o := openOrder()
	o.Items = []entities.OrderItem{
		{ID: "it-1", Quantity: 10, UnitPrice: 90},
		{ID: "it-2", Quantity: 3, UnitPrice: 50, DiscountValue: 30},
	}
	o.Total = -1 // stale cache, the fold must fix it

	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil).Times(2)
	echoUpdate(orders)
	echoUpdate(orders)

	first, err := uc.RecalculateTotals(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Total != 1020 || first.ItemCount != 2 {
		t.Fatalf("unexpected totals: %.0f/%d", first.Total, first.ItemCount)
	}

	second, err := uc.RecalculateTotals(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Total != first.Total || second.ItemCount != first.ItemCount {
		t.Fatalf("recalculation not idempotent: %.0f vs %.0f", second.Total, first.Total)
	}
}

func TestCartUseCase_ExtendDeadline(t *testing.T) {
	t.Run("non-positive days", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		if _, err := uc.ExtendDeadline(context.Background(), "ord-1", 0); !errors.Is(err, ErrInvalidDeadlineDays) {
			t.Fatalf("expected ErrInvalidDeadlineDays, got %v", err)
		}
	})

	t.Run("never decreases deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		far := time.Now().UTC().AddDate(0, 0, 30)
		o.InteractionDeadline = far
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		echoUpdate(orders)

		got, err := uc.ExtendDeadline(context.Background(), "ord-1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.InteractionDeadline.Equal(far) {
			t.Fatalf("deadline moved backwards: %v then %v", far, got.InteractionDeadline)
		}
	})

	t.Run("extends forward", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		before := o.InteractionDeadline
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		echoUpdate(orders)

		got, err := uc.ExtendDeadline(context.Background(), "ord-1", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.InteractionDeadline.After(before) {
			t.Fatalf("expected extended deadline, got %v", got.InteractionDeadline)
		}
	})

	t.Run("closed order unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		o.CartStatus = entities.CartStatusRejeitado
		before := o.InteractionDeadline
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		echoUpdate(orders)

		got, err := uc.ExtendDeadline(context.Background(), "ord-1", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.InteractionDeadline.Equal(before) {
			t.Fatalf("closed order deadline changed")
		}
	})
}

func TestCartUseCase_VersionConflicts(t *testing.T) {
	t.Run("retry succeeds against fresh state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		o := openOrder()
		o.Items = []entities.OrderItem{{ID: "it-1", Quantity: 1, UnitPrice: 10}}

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil).Times(2)
		orders.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.ErrVersionConflict)
		echoUpdate(orders)

		if _, err := uc.RecalculateTotals(context.Background(), "ord-1"); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
	})

	t.Run("bounded retries then conflict surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCartUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(openOrder(), nil).Times(versionRetries)
		orders.EXPECT().UpdateWithVersion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.ErrVersionConflict).Times(versionRetries)

		if _, err := uc.RecalculateTotals(context.Background(), "ord-1"); !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})
}
