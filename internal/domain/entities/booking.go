package entities

import "time"

// BookingStatus is the lifecycle of a scheduled shipment. A cancelled booking
// survives for audit but is excluded from overcommit sums.
type BookingStatus string

const (
	BookingStatusAgendado  BookingStatus = "agendado"
	BookingStatusCancelado BookingStatus = "cancelado"
)

// Address is a freight endpoint. Latitude/Longitude come from the
// reference-data geocoder; quotes require both ends geocoded.
type Address struct {
	Street      string   `json:"street"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	MunicipioID string   `json:"municipio_id,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Geocoded reports whether the address carries coordinates.
func (a Address) Geocoded() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// FreightQuote is the priced outcome of a freight calculation.
type FreightQuote struct {
	DistanceKm   float64 `json:"distance_km"`
	WeightKg     float64 `json:"weight_kg"`
	VolumeM3     float64 `json:"volume_m3"`
	Value        float64 `json:"value"`
	Consolidated bool    `json:"consolidated"`
	ItemCount    int     `json:"item_count"`
}

// TransportBooking schedules (part of) an order item for physical transport.
// The invariant guarded at write time: the sum of active booked quantities
// for an item never exceeds the item's ordered quantity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (item_id-index): item_id
//   - per-item counter row `commit#<item_id>` accumulates active quantity
type TransportBooking struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"order_id"`
	ItemID        string        `json:"item_id"`
	Quantity      int           `json:"quantity"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	FreightValue  float64       `json:"freight_value"`
	WeightKg      float64       `json:"weight_kg"`
	VolumeM3      float64       `json:"volume_m3"`
	Origin        Address       `json:"origin"`
	Destination   Address       `json:"destination"`
	Status        BookingStatus `json:"status"`
	CancelReason  string        `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Active reports whether the booking still counts against the item quantity.
func (b TransportBooking) Active() bool {
	return b.Status == BookingStatusAgendado
}
