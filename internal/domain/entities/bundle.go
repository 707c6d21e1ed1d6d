package entities

import (
	"errors"
	"time"
)

type BundleStatus string

const (
	BundleStatusAtivo     BundleStatus = "ativo"
	BundleStatusInativo   BundleStatus = "inativo"
	BundleStatusEncerrado BundleStatus = "encerrado"
)

var (
	ErrBundleHectareRange = errors.New("bundle hectare range is invalid")
	ErrBundleWindow       = errors.New("bundle validity window is invalid")
	ErrDiscountOutOfRange = errors.New("discount hectare sub-range falls outside bundle range")
)

// TerritoryRestriction is the list of municipality ids a bundle is limited
// to. A nil/empty list is the explicit "unrestricted" variant: the bundle
// applies everywhere.
type TerritoryRestriction []string

// Unrestricted reports whether the bundle has no territorial limit.
func (t TerritoryRestriction) Unrestricted() bool {
	return len(t) == 0
}

// Covers reports whether municipioID is inside the territory (or the
// territory is unrestricted).
func (t TerritoryRestriction) Covers(municipioID string) bool {
	if t.Unrestricted() {
		return true
	}
	for _, id := range t {
		if id == municipioID {
			return true
		}
	}
	return false
}

// BundleDiscount is a per-category discount rule attached to a bundle. Either
// Percentage or FixedAmount may be set; the resolver applies the richer of
// the two for the quantity at hand.
type BundleDiscount struct {
	CategoryID  string  `json:"category_id"`
	Percentage  float64 `json:"percentage"`
	FixedAmount float64 `json:"fixed_amount"`
	HectareMin  float64 `json:"hectare_min"`
	HectareMax  float64 `json:"hectare_max"`
	Active      bool    `json:"active"`
}

// Bundle (combo) is a promotional multi-product offer scoped by hectare
// range, territory and validity window.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (supplier_id-index): supplier_id
//   - territory + discounts embedded as document lists
type Bundle struct {
	ID         string               `json:"id"`
	SupplierID string               `json:"supplier_id"`
	Name       string               `json:"name"`
	HectareMin float64              `json:"hectare_min"`
	HectareMax float64              `json:"hectare_max"`
	StartDate  time.Time            `json:"start_date"`
	EndDate    time.Time            `json:"end_date"`
	Territory  TerritoryRestriction `json:"territory,omitempty"`
	Status     BundleStatus         `json:"status"`
	Discounts  []BundleDiscount     `json:"discounts"`
}

// Validate enforces the load-time invariants on ranges and sub-ranges.
func (b Bundle) Validate() error {
	if b.HectareMin > b.HectareMax {
		return ErrBundleHectareRange
	}
	if b.EndDate.Before(b.StartDate) {
		return ErrBundleWindow
	}
	for _, d := range b.Discounts {
		if d.HectareMin < b.HectareMin || d.HectareMax > b.HectareMax || d.HectareMin > d.HectareMax {
			return ErrDiscountOutOfRange
		}
	}
	return nil
}
