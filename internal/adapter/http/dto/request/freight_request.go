package request

import (
	"strings"
	"time"

	"campo_direto/internal/domain/entities"
)

type AddressRequest struct {
	Street      string   `json:"street"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	MunicipioID string   `json:"municipio_id"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (r AddressRequest) Resolve() entities.Address {
	return entities.Address{
		Street:      strings.TrimSpace(r.Street),
		City:        strings.TrimSpace(r.City),
		State:       strings.TrimSpace(r.State),
		MunicipioID: strings.TrimSpace(r.MunicipioID),
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

type FreightQuoteRequest struct {
	Origin      AddressRequest `json:"origin" binding:"required"`
	Destination AddressRequest `json:"destination" binding:"required"`
	WeightKg    float64        `json:"weight_kg"`
	VolumeM3    float64        `json:"volume_m3"`
}

type FreightLegRequest struct {
	Origin   AddressRequest `json:"origin" binding:"required"`
	WeightKg float64        `json:"weight_kg"`
	VolumeM3 float64        `json:"volume_m3"`
}

type ConsolidatedQuoteRequest struct {
	Legs        []FreightLegRequest `json:"legs" binding:"required"`
	Destination AddressRequest      `json:"destination" binding:"required"`
}

type ScheduleBookingRequest struct {
	OrderID       string         `json:"order_id" binding:"required"`
	ItemID        string         `json:"item_id" binding:"required"`
	Quantity      int            `json:"quantity" binding:"required"`
	ScheduledDate time.Time      `json:"scheduled_date" binding:"required"`
	FreightValue  float64        `json:"freight_value"`
	Origin        AddressRequest `json:"origin"`
	Destination   AddressRequest `json:"destination"`
}

type RescheduleBookingRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type UpdateFreightValueRequest struct {
	Value float64 `json:"value" binding:"required"`
}

type BatchBookingRowRequest struct {
	OrderID       string    `json:"order_id" binding:"required"`
	ItemID        string    `json:"item_id" binding:"required"`
	Quantity      int       `json:"quantity"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

type ValidateBatchRequest struct {
	Requests []BatchBookingRowRequest `json:"requests" binding:"required"`
}
