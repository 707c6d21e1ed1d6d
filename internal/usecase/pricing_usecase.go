package usecase

import (
	"errors"
	"fmt"
	"time"

	"campo_direto/internal/domain/entities"
)

var (
	ErrPriceNotFound     = errors.New("price not found")
	ErrCatalogNotCurrent = errors.New("catalog is not currently valid")
)

// ResolvedPrice is the outcome of tier resolution plus the applied bundle
// discount, if any.
type ResolvedPrice struct {
	UnitPrice       float64
	DiscountPercent float64
	DiscountValue   float64
	AppliedBundleID string
}

// IsBundleEligible is the combo eligibility check: all rules must hold.
// Active status, validity window, producer hectare range and territory
// coverage (an unrestricted territory covers every municipality). Pure over
// the snapshot inputs.
func IsBundleEligible(b entities.Bundle, pctx entities.ProducerContext, at time.Time) bool {
	if b.Status != entities.BundleStatusAtivo {
		return false
	}
	if at.Before(b.StartDate) || at.After(b.EndDate) {
		return false
	}
	if pctx.Hectares < b.HectareMin || pctx.Hectares > b.HectareMax {
		return false
	}
	return b.Territory.Covers(pctx.MunicipioID)
}

// ResolveUnitPrice resolves the unit price for a product from a catalog's
// tiered price table and applies the best qualifying bundle discount.
//
// Failure is always ErrPriceNotFound (wrapping the cause): the catalog is not
// current, the product is not listed, or the tier table is malformed or has a
// gap at the quantity.
//
// Discount selection, per the business rule: per discount the richer of
// percentage vs fixed amount applies; across qualifying discounts the one
// with the narrowest hectare sub-range wins, declaration order breaking ties.
// No side effects.
func ResolveUnitPrice(
	cat entities.Catalog,
	productID string,
	quantity int,
	bundles []entities.Bundle,
	pctx entities.ProducerContext,
	at time.Time,
) (ResolvedPrice, error) {
	if !cat.IsCurrentAt(at) {
		return ResolvedPrice{}, fmt.Errorf("%w: %w", ErrPriceNotFound, ErrCatalogNotCurrent)
	}
	item, ok := cat.ItemForProduct(productID)
	if !ok {
		return ResolvedPrice{}, fmt.Errorf("%w: product %s not in catalog %s", ErrPriceNotFound, productID, cat.ID)
	}
	if err := item.Tiers.Validate(); err != nil {
		return ResolvedPrice{}, fmt.Errorf("%w: %w", ErrPriceNotFound, err)
	}
	tier, err := item.Tiers.TierFor(quantity)
	if err != nil {
		return ResolvedPrice{}, fmt.Errorf("%w: %w", ErrPriceNotFound, err)
	}

	resolved := ResolvedPrice{UnitPrice: tier.UnitPrice}
	gross := float64(quantity) * tier.UnitPrice

	bestWidth := -1.0
	for _, b := range bundles {
		if !IsBundleEligible(b, pctx, at) {
			continue
		}
		for _, d := range b.Discounts {
			if !d.Active || d.CategoryID != item.CategoryID {
				continue
			}
			if pctx.Hectares < d.HectareMin || pctx.Hectares > d.HectareMax {
				continue
			}
			width := d.HectareMax - d.HectareMin
			// Narrowest sub-range wins; strict < keeps the first declared on ties.
			if bestWidth >= 0 && width >= bestWidth {
				continue
			}
			percentValue := gross * d.Percentage / 100
			value := percentValue
			pct := d.Percentage
			if d.FixedAmount > value {
				value = d.FixedAmount
				pct = 0
			}
			bestWidth = width
			resolved.DiscountPercent = pct
			resolved.DiscountValue = value
			resolved.AppliedBundleID = b.ID
		}
	}
	return resolved, nil
}
