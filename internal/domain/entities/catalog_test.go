package entities

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestPriceTierListValidate(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		if err := (PriceTierList{}).Validate(); !errors.Is(err, ErrTierListEmpty) {
			t.Fatalf("expected ErrTierListEmpty, got %v", err)
		}
	})

	t.Run("valid ascending bands", func(t *testing.T) {
		l := PriceTierList{
			{MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: 100},
			{MinQuantity: 10, MaxQuantity: intPtr(50), UnitPrice: 90},
			{MinQuantity: 50, UnitPrice: 80},
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("overlapping bands", func(t *testing.T) {
		l := PriceTierList{
			{MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: 100},
			{MinQuantity: 5, MaxQuantity: intPtr(50), UnitPrice: 90},
		}
		if err := l.Validate(); !errors.Is(err, ErrTierListOverlap) {
			t.Fatalf("expected ErrTierListOverlap, got %v", err)
		}
	})

	t.Run("unordered bands", func(t *testing.T) {
		l := PriceTierList{
			{MinQuantity: 10, MaxQuantity: intPtr(50), UnitPrice: 90},
			{MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: 100},
		}
		if err := l.Validate(); !errors.Is(err, ErrTierListUnordered) {
			t.Fatalf("expected ErrTierListUnordered, got %v", err)
		}
	})

	t.Run("empty range", func(t *testing.T) {
		l := PriceTierList{{MinQuantity: 10, MaxQuantity: intPtr(10), UnitPrice: 90}}
		if err := l.Validate(); !errors.Is(err, ErrTierRangeInvalid) {
			t.Fatalf("expected ErrTierRangeInvalid, got %v", err)
		}
	})

	t.Run("open-ended band not last", func(t *testing.T) {
		l := PriceTierList{
			{MinQuantity: 1, UnitPrice: 100},
			{MinQuantity: 50, MaxQuantity: intPtr(60), UnitPrice: 90},
		}
		if err := l.Validate(); !errors.Is(err, ErrTierRangeInvalid) {
			t.Fatalf("expected ErrTierRangeInvalid, got %v", err)
		}
	})
}

func TestPriceTierListTierFor(t *testing.T) {
	l := PriceTierList{
		{MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: 100},
		{MinQuantity: 10, MaxQuantity: intPtr(50), UnitPrice: 90},
		{MinQuantity: 50, UnitPrice: 80},
	}

	cases := []struct {
		qty  int
		want float64
	}{
		{1, 100},
		{9, 100},
		{10, 90}, // boundary belongs to the upper band, ranges are [min,max)
		{49, 90},
		{50, 80},
		{100000, 80}, // open-ended top tier
	}
	for _, tc := range cases {
		tier, err := l.TierFor(tc.qty)
		if err != nil {
			t.Fatalf("qty %d: unexpected error: %v", tc.qty, err)
		}
		if tier.UnitPrice != tc.want {
			t.Fatalf("qty %d: expected price %.0f, got %.0f", tc.qty, tc.want, tier.UnitPrice)
		}
	}

	t.Run("gap yields no tier", func(t *testing.T) {
		gapped := PriceTierList{
			{MinQuantity: 1, MaxQuantity: intPtr(10), UnitPrice: 100},
			{MinQuantity: 20, MaxQuantity: intPtr(50), UnitPrice: 90},
		}
		if _, err := gapped.TierFor(15); !errors.Is(err, ErrNoTierForQuantity) {
			t.Fatalf("expected ErrNoTierForQuantity, got %v", err)
		}
	})
}

func TestCatalogIsCurrentAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	cat := Catalog{ID: "cat-1", Active: true, StartDate: start, EndDate: &end}

	if !cat.IsCurrentAt(start) {
		t.Fatalf("expected current at window start")
	}
	if !cat.IsCurrentAt(end) {
		t.Fatalf("expected current at window end (inclusive)")
	}
	if cat.IsCurrentAt(start.Add(-time.Hour)) {
		t.Fatalf("expected not current before window")
	}
	if cat.IsCurrentAt(end.Add(time.Hour)) {
		t.Fatalf("expected not current after window")
	}

	cat.Active = false
	if cat.IsCurrentAt(start.Add(time.Hour)) {
		t.Fatalf("expected inactive catalog to never be current")
	}

	openEnded := Catalog{ID: "cat-2", Active: true, StartDate: start}
	if !openEnded.IsCurrentAt(start.AddDate(10, 0, 0)) {
		t.Fatalf("expected nil end date to keep catalog current")
	}
}

func TestCatalogValidate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	bad := start.Add(-time.Hour)

	cat := Catalog{ID: "cat-1", StartDate: start, EndDate: &bad}
	if err := cat.Validate(); !errors.Is(err, ErrCatalogWindow) {
		t.Fatalf("expected ErrCatalogWindow, got %v", err)
	}

	cat = Catalog{
		ID:        "cat-1",
		StartDate: start,
		Items: []CatalogItem{{
			ProductID: "prod-1",
			Tiers:     PriceTierList{},
		}},
	}
	if err := cat.Validate(); !errors.Is(err, ErrTierListEmpty) {
		t.Fatalf("expected embedded tier validation to surface, got %v", err)
	}
}
