package repository

import (
	"testing"
	"time"

	"campo_direto/internal/domain/entities"
)

func TestOpenCartGuardID(t *testing.T) {
	if got := openCartGuardID("prd-1", "sup-1"); got != "open#prd-1#sup-1" {
		t.Fatalf("unexpected guard id: %s", got)
	}
}

func TestGuardReclaimable(t *testing.T) {
	now := time.Now().UTC()

	held := func(status entities.CartStatus, deadline time.Time) entities.Order {
		return entities.Order{
			ID:                  "ord-1",
			CartStatus:          status,
			InteractionDeadline: deadline,
		}
	}

	tests := []struct {
		name string
		held entities.Order
		want bool
	}{
		{"guarded order missing", entities.Order{}, true},
		{"open within deadline", held(entities.CartStatusAberto, now.Add(24*time.Hour)), false},
		{"negotiating within deadline", held(entities.CartStatusEmNegociacao, now.Add(time.Hour)), false},
		{"open past deadline", held(entities.CartStatusAberto, now.Add(-time.Hour)), true},
		{"negotiating past deadline", held(entities.CartStatusEmNegociacao, now.Add(-time.Minute)), true},
		{"accepted", held(entities.CartStatusAceito, now.Add(24*time.Hour)), true},
		{"rejected", held(entities.CartStatusRejeitado, now.Add(24*time.Hour)), true},
		{"cancelled", held(entities.CartStatusCancelado, now.Add(24*time.Hour)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guardReclaimable(tt.held, now); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
