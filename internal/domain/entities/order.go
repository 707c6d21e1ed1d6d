package entities

import "time"

// CartStatus is the negotiation lifecycle of an order.
//
// Machine: aberto -> enviado -> em_negociacao -> {aceito, rejeitado},
// with em_negociacao looping on counterproposals; any negotiable state
// is observed as expirado once the
// interaction deadline passes without a terminal action. Terminal states
// (aceito, rejeitado, expirado, cancelado) are final.
type CartStatus string

const (
	CartStatusAberto       CartStatus = "aberto"
	CartStatusEnviado      CartStatus = "enviado"
	CartStatusEmNegociacao CartStatus = "em_negociacao"
	CartStatusAceito       CartStatus = "aceito"
	CartStatusRejeitado    CartStatus = "rejeitado"
	CartStatusExpirado     CartStatus = "expirado"
	CartStatusCancelado    CartStatus = "cancelado"
)

// IsNegotiable reports whether proposals/cart mutations are still admissible
// in this status (deadline permitting).
func (s CartStatus) IsNegotiable() bool {
	switch s {
	case CartStatusAberto, CartStatusEnviado, CartStatusEmNegociacao:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s CartStatus) IsTerminal() bool {
	switch s {
	case CartStatusAceito, CartStatusRejeitado, CartStatusExpirado, CartStatusCancelado:
		return true
	}
	return false
}

// OrderItem is one line of the cart. FinalValue is always
// quantity times unit price minus discount and is recomputed on every
// quantity or price change, never patched directly.
type OrderItem struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	CategoryID      string  `json:"category_id"`
	CatalogID       string  `json:"catalog_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountValue   float64 `json:"discount_value"`
	FinalValue      float64 `json:"final_value"`
	UnitWeight      float64 `json:"unit_weight_kg"`
	UnitVolume      float64 `json:"unit_volume_m3"`
	AppliedBundleID string  `json:"applied_bundle_id,omitempty"`
}

// Recalculate refreshes FinalValue from the item's own terms.
func (i *OrderItem) Recalculate() {
	i.FinalValue = float64(i.Quantity)*i.UnitPrice - i.DiscountValue
}

// Order is the cart/negotiation aggregate between one producer and one
// supplier. Exactly one open order may exist per (producer, supplier) pair.
//
// Storage model (DynamoDB):
//   - PK: id, items embedded so the aggregate is read and written atomically
//   - version: optimistic-concurrency token, compare-and-swap on every write
//   - proposal_seq: monotonic counter handing out proposal sequence numbers
type Order struct {
	ID                  string      `json:"id"`
	ProducerID          string      `json:"producer_id"`
	SupplierID          string      `json:"supplier_id"`
	DistributionPointID string      `json:"distribution_point_id"`
	CartStatus          CartStatus  `json:"cart_status"`
	AllowNegotiation    bool        `json:"allow_negotiation"`
	Items               []OrderItem `json:"items"`
	ItemCount           int         `json:"item_count"`
	Total               float64     `json:"total"`
	InteractionDeadline time.Time   `json:"interaction_deadline"`
	Version             int64       `json:"version"`
	ProposalSeq         int64       `json:"proposal_seq"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// EffectiveCartStatus observes deadline expiry lazily: a negotiable order past
// its interaction deadline reads as expirado without a stored transition.
func (o Order) EffectiveCartStatus(now time.Time) CartStatus {
	if o.CartStatus.IsNegotiable() && now.After(o.InteractionDeadline) {
		return CartStatusExpirado
	}
	return o.CartStatus
}

// RecalculateTotals folds the current item set into Total/ItemCount. The fold
// is deterministic over the item list, so repeated calls with an unchanged
// set yield identical totals.
func (o *Order) RecalculateTotals() {
	total := 0.0
	for i := range o.Items {
		o.Items[i].Recalculate()
		total += o.Items[i].FinalValue
	}
	o.Total = total
	o.ItemCount = len(o.Items)
}

// ItemByID returns a pointer into the aggregate's item list, or nil.
func (o *Order) ItemByID(itemID string) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}

// RemoveItem drops the item from the aggregate; reports whether it existed.
func (o *Order) RemoveItem(itemID string) bool {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return true
		}
	}
	return false
}
