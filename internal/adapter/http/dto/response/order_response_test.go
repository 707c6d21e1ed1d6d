package response

import (
	"testing"
	"time"

	"campo_direto/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:               "ord-1",
		ProducerID:       "prd-1",
		SupplierID:       "sup-1",
		CartStatus:       entities.CartStatusEmNegociacao,
		AllowNegotiation: true,
		Items: []entities.OrderItem{{
			ID: "it-1", ProductID: "prod-1", Quantity: 10,
			UnitPrice: 90, FinalValue: 900, AppliedBundleID: "bnd-1",
		}},
		ItemCount:           1,
		Total:               900,
		InteractionDeadline: now.Add(24 * time.Hour),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	r := FromOrder(o)
	if r.CartStatus != "em_negociacao" {
		t.Fatalf("expected em_negociacao, got %q", r.CartStatus)
	}
	if len(r.Items) != 1 || r.Items[0].AppliedBundleID != "bnd-1" {
		t.Fatalf("items not mapped: %+v", r.Items)
	}
	if r.Total != 900 || r.ItemCount != 1 {
		t.Fatalf("totals not mapped: %+v", r)
	}
}

func TestFromOrder_EmptyItems(t *testing.T) {
	r := FromOrder(entities.Order{ID: "ord-1"})
	if r.Items == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
