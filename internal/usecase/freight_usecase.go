package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/infrastructure/metrics"
	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingCancelled    = errors.New("booking is cancelled")
	ErrOrderNotAccepted    = errors.New("order is not accepted")
	ErrFreightCalculation  = errors.New("freight could not be calculated")
	ErrScheduling          = errors.New("scheduling rejected")
	ErrInvalidFreightValue = errors.New("freight value must be positive")
	ErrInvalidScheduleDate = errors.New("scheduled date is required")
	ErrEmptyBatch          = errors.New("batch contains no requests")
	ErrRateGatewayUnset    = errors.New("freight rate gateway not configured")
)

// FreightLeg is one origin to destination load for quoting.
type FreightLeg struct {
	Origin      entities.Address
	Destination entities.Address
	WeightKg    float64
	VolumeM3    float64
}

// BookingRequest is one row of a batch pre-flight or schedule call.
type BookingRequest struct {
	OrderID       string    `json:"order_id"`
	ItemID        string    `json:"item_id"`
	Quantity      int       `json:"quantity"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// BookingValidation is the per-request verdict of ValidateBatch.
type BookingValidation struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
}

// BatchValidation aggregates the simulation outcome: all requests are judged
// against current bookings before any would commit.
type BatchValidation struct {
	Valid   bool                `json:"valid"`
	Reason  string              `json:"reason,omitempty"`
	Results []BookingValidation `json:"results"`
}

// IFreightUseCase prices shipments and manages bookings against item
// quantities, never letting active bookings overcommit an item.
type IFreightUseCase interface {
	CalculateFreight(ctx context.Context, leg FreightLeg) (entities.FreightQuote, error)
	CalculateConsolidatedFreight(ctx context.Context, legs []FreightLeg, sharedDestination entities.Address) (entities.FreightQuote, error)
	Schedule(ctx context.Context, req BookingRequest, freightValue float64, origin, destination entities.Address) (entities.TransportBooking, error)
	Reschedule(ctx context.Context, bookingID string, newDate time.Time) (entities.TransportBooking, error)
	UpdateFreightValue(ctx context.Context, bookingID string, newValue float64) (entities.TransportBooking, error)
	ValidateBatch(ctx context.Context, reqs []BookingRequest) (BatchValidation, error)
	Cancel(ctx context.Context, bookingID, reason string) (entities.TransportBooking, error)
}

type FreightUseCase struct {
	orders   interfaces.IOrderRepository
	bookings interfaces.IBookingRepository
	rates    interfaces.IFreightRateGateway
	notifier interfaces.INotifier
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(orders interfaces.IOrderRepository, bookings interfaces.IBookingRepository, rates interfaces.IFreightRateGateway, notifier interfaces.INotifier) *FreightUseCase {
	return &FreightUseCase{orders: orders, bookings: bookings, rates: rates, notifier: notifier}
}

func (u *FreightUseCase) CalculateFreight(ctx context.Context, leg FreightLeg) (entities.FreightQuote, error) {
	if !leg.Origin.Geocoded() || !leg.Destination.Geocoded() {
		return entities.FreightQuote{}, fmt.Errorf("%w: origin and destination must be geocoded", ErrFreightCalculation)
	}
	rate, err := u.currentRate(ctx)
	if err != nil {
		return entities.FreightQuote{}, err
	}
	distance := haversineKm(leg.Origin, leg.Destination)
	value := legPrice(distance, leg.WeightKg, leg.VolumeM3, rate)
	return entities.FreightQuote{
		DistanceKm: distance,
		WeightKg:   leg.WeightKg,
		VolumeM3:   leg.VolumeM3,
		Value:      value,
		ItemCount:  1,
	}, nil
}

// CalculateConsolidatedFreight prices several items bound for the same
// destination as a single combined load: aggregated weight/volume over the
// longest leg with the consolidation factor applied, instead of a per-item
// summation. This is the supplier's discount lever.
func (u *FreightUseCase) CalculateConsolidatedFreight(ctx context.Context, legs []FreightLeg, sharedDestination entities.Address) (entities.FreightQuote, error) {
	if len(legs) == 0 {
		return entities.FreightQuote{}, fmt.Errorf("%w: no items to consolidate", ErrFreightCalculation)
	}
	if !sharedDestination.Geocoded() {
		return entities.FreightQuote{}, fmt.Errorf("%w: destination must be geocoded", ErrFreightCalculation)
	}
	rate, err := u.currentRate(ctx)
	if err != nil {
		return entities.FreightQuote{}, err
	}

	var weight, volume, distance float64
	for _, leg := range legs {
		if !leg.Origin.Geocoded() {
			return entities.FreightQuote{}, fmt.Errorf("%w: every origin must be geocoded", ErrFreightCalculation)
		}
		weight += leg.WeightKg
		volume += leg.VolumeM3
		if d := haversineKm(leg.Origin, sharedDestination); d > distance {
			distance = d
		}
	}

	factor := rate.ConsolidationFactor
	if factor <= 0 || factor > 1 {
		factor = 1
	}
	value := legPrice(distance, weight, volume, rate) * factor
	if value < rate.MinimumCharge {
		value = rate.MinimumCharge
	}
	return entities.FreightQuote{
		DistanceKm:   distance,
		WeightKg:     weight,
		VolumeM3:     volume,
		Value:        value,
		Consolidated: true,
		ItemCount:    len(legs),
	}, nil
}

func (u *FreightUseCase) Schedule(ctx context.Context, req BookingRequest, freightValue float64, origin, destination entities.Address) (entities.TransportBooking, error) {
	if req.Quantity <= 0 {
		return entities.TransportBooking{}, ErrInvalidQuantity
	}
	if req.ScheduledDate.IsZero() {
		return entities.TransportBooking{}, ErrInvalidScheduleDate
	}

	o, item, err := u.loadAcceptedItem(ctx, req.OrderID, req.ItemID)
	if err != nil {
		return entities.TransportBooking{}, err
	}

	now := time.Now().UTC()
	b := entities.TransportBooking{
		ID:            uuid.NewString(),
		OrderID:       o.ID,
		ItemID:        item.ID,
		Quantity:      req.Quantity,
		ScheduledDate: req.ScheduledDate,
		FreightValue:  freightValue,
		WeightKg:      float64(req.Quantity) * item.UnitWeight,
		VolumeM3:      float64(req.Quantity) * item.UnitVolume,
		Origin:        origin,
		Destination:   destination,
		Status:        entities.BookingStatusAgendado,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.bookings.Create(ctx, b, item.Quantity)
	if err != nil {
		if errors.Is(err, interfaces.ErrOvercommitted) {
			committed, sumErr := u.bookings.CommittedQuantity(ctx, item.ID)
			if sumErr != nil {
				committed = -1
			}
			if committed >= 0 {
				return entities.TransportBooking{}, fmt.Errorf(
					"%w: item %s has %d booked, requesting %d exceeds ordered quantity %d",
					ErrScheduling, item.ID, committed, req.Quantity, item.Quantity)
			}
			return entities.TransportBooking{}, fmt.Errorf(
				"%w: item %s would exceed ordered quantity %d", ErrScheduling, item.ID, item.Quantity)
		}
		return entities.TransportBooking{}, err
	}

	u.notifyBooking(ctx, created)
	metrics.BookingsScheduled.Inc()
	logger.S().Infow("booking scheduled",
		"booking_id", created.ID, "order_id", o.ID, "item_id", item.ID,
		"quantity", req.Quantity, "date", req.ScheduledDate)
	return created, nil
}

func (u *FreightUseCase) Reschedule(ctx context.Context, bookingID string, newDate time.Time) (entities.TransportBooking, error) {
	if newDate.IsZero() {
		return entities.TransportBooking{}, ErrInvalidScheduleDate
	}
	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return entities.TransportBooking{}, err
	}
	if !b.Active() {
		return entities.TransportBooking{}, ErrBookingCancelled
	}
	if _, _, err := u.loadAcceptedItem(ctx, b.OrderID, b.ItemID); err != nil {
		return entities.TransportBooking{}, err
	}
	updated, err := u.bookings.UpdateScheduledDate(ctx, b.ID, newDate)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.TransportBooking{}, ErrBookingNotFound
	}
	return updated, err
}

// UpdateFreightValue adjusts the freight price of a booking; deliberately
// independent of the quantity commitment checks.
func (u *FreightUseCase) UpdateFreightValue(ctx context.Context, bookingID string, newValue float64) (entities.TransportBooking, error) {
	if newValue <= 0 {
		return entities.TransportBooking{}, ErrInvalidFreightValue
	}
	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return entities.TransportBooking{}, err
	}
	updated, err := u.bookings.UpdateFreightValue(ctx, b.ID, newValue)
	if errors.Is(err, interfaces.ErrNotFound) {
		return entities.TransportBooking{}, ErrBookingNotFound
	}
	return updated, err
}

// ValidateBatch simulates every request against current bookings before any
// would commit, so multi-item scheduling UIs can pre-flight a whole plan. No
// writes happen here; Schedule re-checks atomically on commit.
func (u *FreightUseCase) ValidateBatch(ctx context.Context, reqs []BookingRequest) (BatchValidation, error) {
	if len(reqs) == 0 {
		return BatchValidation{}, ErrEmptyBatch
	}

	out := BatchValidation{Valid: true, Results: make([]BookingValidation, 0, len(reqs))}
	ordersByID := map[string]entities.Order{}
	simulated := map[string]int{}

	for _, req := range reqs {
		verdict := BookingValidation{ItemID: req.ItemID, Quantity: req.Quantity, Valid: true}

		o, ok := ordersByID[req.OrderID]
		if !ok {
			var err error
			o, err = u.orders.GetByID(ctx, req.OrderID)
			if err != nil {
				return BatchValidation{}, err
			}
			ordersByID[req.OrderID] = o
		}

		switch {
		case req.Quantity <= 0:
			verdict.fail("quantity must be positive")
		case o.ID == "":
			verdict.fail("order not found")
		case o.EffectiveCartStatus(time.Now().UTC()) != entities.CartStatusAceito:
			verdict.fail("order is not accepted")
		default:
			item := o.ItemByID(req.ItemID)
			if item == nil {
				verdict.fail("item not found")
				break
			}
			if _, seen := simulated[item.ID]; !seen {
				committed, err := u.bookings.CommittedQuantity(ctx, item.ID)
				if err != nil {
					return BatchValidation{}, err
				}
				simulated[item.ID] = committed
			}
			if simulated[item.ID]+req.Quantity > item.Quantity {
				verdict.fail(fmt.Sprintf("would overcommit: %d booked + %d requested > %d ordered",
					simulated[item.ID], req.Quantity, item.Quantity))
			} else {
				simulated[item.ID] += req.Quantity
			}
		}

		if !verdict.Valid && out.Reason == "" {
			out.Reason = verdict.Reason
		}
		out.Valid = out.Valid && verdict.Valid
		out.Results = append(out.Results, verdict)
	}
	return out, nil
}

// Cancel soft-cancels a booking: the row stays for audit and stops counting
// against the item's quantity.
func (u *FreightUseCase) Cancel(ctx context.Context, bookingID, reason string) (entities.TransportBooking, error) {
	b, err := u.loadBooking(ctx, bookingID)
	if err != nil {
		return entities.TransportBooking{}, err
	}
	if !b.Active() {
		return entities.TransportBooking{}, ErrBookingCancelled
	}
	cancelled, err := u.bookings.Cancel(ctx, b.ID, strings.TrimSpace(reason))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.TransportBooking{}, ErrBookingNotFound
		}
		return entities.TransportBooking{}, err
	}
	logger.S().Infow("booking cancelled", "booking_id", b.ID, "item_id", b.ItemID, "reason", reason)
	return cancelled, nil
}

// currentRate guards the optional collaborator: the router keeps serving with
// no gateway configured, so quoting must fail cleanly instead of panicking.
func (u *FreightUseCase) currentRate(ctx context.Context) (interfaces.FreightRate, error) {
	if u.rates == nil {
		logger.S().Warnw("freight rate requested without a configured gateway")
		return interfaces.FreightRate{}, ErrRateGatewayUnset
	}
	return u.rates.GetRate(ctx)
}

func (u *FreightUseCase) loadBooking(ctx context.Context, bookingID string) (entities.TransportBooking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.TransportBooking{}, ErrBookingNotFound
	}
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.TransportBooking{}, err
	}
	if b.ID == "" {
		return entities.TransportBooking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *FreightUseCase) loadAcceptedItem(ctx context.Context, orderID, itemID string) (entities.Order, *entities.OrderItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if o.ID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}
	if o.EffectiveCartStatus(time.Now().UTC()) != entities.CartStatusAceito {
		return entities.Order{}, nil, ErrOrderNotAccepted
	}
	item := o.ItemByID(itemID)
	if item == nil {
		return entities.Order{}, nil, ErrItemNotFound
	}
	return o, item, nil
}

func (u *FreightUseCase) notifyBooking(ctx context.Context, b entities.TransportBooking) {
	if u.notifier == nil {
		return
	}
	event := interfaces.NotificationEvent{
		Type:    "booking.scheduled",
		OrderID: b.OrderID,
		Detail: map[string]any{
			"booking_id": b.ID,
			"item_id":    b.ItemID,
			"quantity":   b.Quantity,
		},
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		logger.S().Warnw("booking notification failed", "booking_id", b.ID, "error", err)
	}
}

func (v *BookingValidation) fail(reason string) {
	v.Valid = false
	v.Reason = reason
}

const earthRadiusKm = 6371.0

// haversineKm computes great-circle distance between two geocoded addresses.
func haversineKm(a, b entities.Address) float64 {
	lat1 := *a.Latitude * math.Pi / 180
	lat2 := *b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (*b.Longitude - *a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func legPrice(distanceKm, weightKg, volumeM3 float64, rate interfaces.FreightRate) float64 {
	value := distanceKm * (weightKg*rate.PricePerKgKm + volumeM3*rate.PricePerM3Km)
	if value < rate.MinimumCharge {
		value = rate.MinimumCharge
	}
	return value
}
