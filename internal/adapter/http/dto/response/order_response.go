package response

import (
	"time"

	"campo_direto/internal/domain/entities"
)

type OrderItemResponse struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	CategoryID      string  `json:"category_id"`
	CatalogID       string  `json:"catalog_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountValue   float64 `json:"discount_value"`
	FinalValue      float64 `json:"final_value"`
	AppliedBundleID string  `json:"applied_bundle_id,omitempty"`
}

type OrderResponse struct {
	ID                  string              `json:"id"`
	ProducerID          string              `json:"producer_id"`
	SupplierID          string              `json:"supplier_id"`
	DistributionPointID string              `json:"distribution_point_id"`
	CartStatus          string              `json:"cart_status"`
	AllowNegotiation    bool                `json:"allow_negotiation"`
	Items               []OrderItemResponse `json:"items"`
	ItemCount           int                 `json:"item_count"`
	Total               float64             `json:"total"`
	InteractionDeadline time.Time           `json:"interaction_deadline"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			CategoryID:      it.CategoryID,
			CatalogID:       it.CatalogID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			DiscountValue:   it.DiscountValue,
			FinalValue:      it.FinalValue,
			AppliedBundleID: it.AppliedBundleID,
		})
	}
	return OrderResponse{
		ID:                  o.ID,
		ProducerID:          o.ProducerID,
		SupplierID:          o.SupplierID,
		DistributionPointID: o.DistributionPointID,
		CartStatus:          string(o.CartStatus),
		AllowNegotiation:    o.AllowNegotiation,
		Items:               items,
		ItemCount:           o.ItemCount,
		Total:               o.Total,
		InteractionDeadline: o.InteractionDeadline,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
