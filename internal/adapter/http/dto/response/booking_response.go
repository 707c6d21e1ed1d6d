package response

import (
	"time"

	"campo_direto/internal/domain/entities"
)

type FreightQuoteResponse struct {
	DistanceKm   float64 `json:"distance_km"`
	WeightKg     float64 `json:"weight_kg"`
	VolumeM3     float64 `json:"volume_m3"`
	Value        float64 `json:"value"`
	Consolidated bool    `json:"consolidated"`
	ItemCount    int     `json:"item_count"`
}

func FromFreightQuote(q entities.FreightQuote) FreightQuoteResponse {
	return FreightQuoteResponse{
		DistanceKm:   q.DistanceKm,
		WeightKg:     q.WeightKg,
		VolumeM3:     q.VolumeM3,
		Value:        q.Value,
		Consolidated: q.Consolidated,
		ItemCount:    q.ItemCount,
	}
}

type BookingResponse struct {
	ID            string           `json:"id"`
	OrderID       string           `json:"order_id"`
	ItemID        string           `json:"item_id"`
	Quantity      int              `json:"quantity"`
	ScheduledDate time.Time        `json:"scheduled_date"`
	FreightValue  float64          `json:"freight_value"`
	WeightKg      float64          `json:"weight_kg"`
	VolumeM3      float64          `json:"volume_m3"`
	Origin        entities.Address `json:"origin"`
	Destination   entities.Address `json:"destination"`
	Status        string           `json:"status"`
	CancelReason  string           `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromBooking(b entities.TransportBooking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		OrderID:       b.OrderID,
		ItemID:        b.ItemID,
		Quantity:      b.Quantity,
		ScheduledDate: b.ScheduledDate,
		FreightValue:  b.FreightValue,
		WeightKg:      b.WeightKg,
		VolumeM3:      b.VolumeM3,
		Origin:        b.Origin,
		Destination:   b.Destination,
		Status:        string(b.Status),
		CancelReason:  b.CancelReason,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
