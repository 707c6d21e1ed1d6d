package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTierListEmpty      = errors.New("price tier list is empty")
	ErrTierListUnordered  = errors.New("price tier list is not in ascending order")
	ErrTierListOverlap    = errors.New("price tier ranges overlap")
	ErrTierRangeInvalid   = errors.New("price tier range is invalid")
	ErrNoTierForQuantity  = errors.New("no price tier matches quantity")
	ErrCatalogWindow      = errors.New("catalog validity window is invalid")
)

// PriceTier maps a half-open quantity band [MinQuantity, MaxQuantity) to a
// unit price. MaxQuantity == nil means the band is open-ended at the top.
type PriceTier struct {
	MinQuantity int      `json:"min_quantity"`
	MaxQuantity *int     `json:"max_quantity,omitempty"`
	UnitPrice   float64  `json:"unit_price"`
}

// Contains reports whether qty falls inside the band.
func (t PriceTier) Contains(qty int) bool {
	if qty < t.MinQuantity {
		return false
	}
	return t.MaxQuantity == nil || qty < *t.MaxQuantity
}

// PriceTierList is the ordered band list stored with a catalog item.
//
// Persistence note: bands are stored as a structured document and the
// ordering/non-overlap invariants are re-checked on every load, not only on
// insert. A table that fails validation is treated as malformed and the
// resolver reports PRICE_NOT_FOUND for it.
type PriceTierList []PriceTier

// Validate enforces the load-time invariants: at least one band, ascending
// order, positive widths, no overlaps and only the last band open-ended.
func (l PriceTierList) Validate() error {
	if len(l) == 0 {
		return ErrTierListEmpty
	}
	for i, t := range l {
		if t.MinQuantity < 0 {
			return fmt.Errorf("%w: tier %d has negative minimum", ErrTierRangeInvalid, i)
		}
		if t.MaxQuantity != nil && *t.MaxQuantity <= t.MinQuantity {
			return fmt.Errorf("%w: tier %d has empty range", ErrTierRangeInvalid, i)
		}
		if t.MaxQuantity == nil && i != len(l)-1 {
			return fmt.Errorf("%w: open-ended tier %d is not last", ErrTierRangeInvalid, i)
		}
		if i == 0 {
			continue
		}
		prev := l[i-1]
		if t.MinQuantity < prev.MinQuantity {
			return ErrTierListUnordered
		}
		if prev.MaxQuantity != nil && t.MinQuantity < *prev.MaxQuantity {
			return ErrTierListOverlap
		}
	}
	return nil
}

// TierFor selects the single band containing qty. Exactly one band matches a
// valid list; a gap in the configured bands surfaces as ErrNoTierForQuantity.
func (l PriceTierList) TierFor(qty int) (PriceTier, error) {
	for _, t := range l {
		if t.Contains(qty) {
			return t, nil
		}
	}
	return PriceTier{}, fmt.Errorf("%w: quantity %d", ErrNoTierForQuantity, qty)
}

// CatalogItem is the price table for one product inside a catalog.
type CatalogItem struct {
	ProductID  string        `json:"product_id"`
	CategoryID string        `json:"category_id"`
	Tiers      PriceTierList `json:"tiers"`
	BasePrice  *float64      `json:"base_price,omitempty"`
	UnitWeight float64       `json:"unit_weight_kg"`
	UnitVolume float64       `json:"unit_volume_m3"`
}

// Catalog is a time-scoped price list keyed by
// (season, distribution point, crop, category).
//
// Storage model (DynamoDB):
//   - PK: id
//   - items embedded as a document list
//
// Only one catalog may be "current" for a key tuple at a given instant; the
// reference-data service owns that uniqueness, this side only checks currency.
type Catalog struct {
	ID                  string        `json:"id"`
	SeasonID            string        `json:"season_id"`
	DistributionPointID string        `json:"distribution_point_id"`
	CropID              string        `json:"crop_id"`
	CategoryID          string        `json:"category_id"`
	StartDate           time.Time     `json:"start_date"`
	EndDate             *time.Time    `json:"end_date,omitempty"`
	Active              bool          `json:"active"`
	Items               []CatalogItem `json:"items"`
}

// Validate checks the validity window and every embedded tier list.
func (c Catalog) Validate() error {
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return ErrCatalogWindow
	}
	for _, it := range c.Items {
		if err := it.Tiers.Validate(); err != nil {
			return fmt.Errorf("item %s: %w", it.ProductID, err)
		}
	}
	return nil
}

// IsCurrentAt reports whether the catalog is active and `at` falls inside
// [StartDate, EndDate]; a nil EndDate keeps the catalog open-ended.
func (c Catalog) IsCurrentAt(at time.Time) bool {
	if !c.Active {
		return false
	}
	if at.Before(c.StartDate) {
		return false
	}
	return c.EndDate == nil || !at.After(*c.EndDate)
}

// ItemForProduct finds the price table for a product; ok is false when the
// catalog does not list it.
func (c Catalog) ItemForProduct(productID string) (CatalogItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CatalogItem{}, false
}
