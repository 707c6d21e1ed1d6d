package handlers

import (
	"errors"
	"net/http"

	request "campo_direto/internal/adapter/http/dto/request"
	response "campo_direto/internal/adapter/http/dto/response"
	"campo_direto/internal/usecase"
	"campo_direto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFreightPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid freight payload", http.StatusBadRequest)
)

// FreightHandler exposes freight quoting and transport bookings.
type FreightHandler struct {
	usecase usecase.IFreightUseCase
}

func NewFreightHandler(uc usecase.IFreightUseCase) *FreightHandler {
	return &FreightHandler{usecase: uc}
}

func (h *FreightHandler) Quote(c *gin.Context) {
	var payload request.FreightQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.CalculateFreight(c.Request.Context(), usecase.FreightLeg{
		Origin:      payload.Origin.Resolve(),
		Destination: payload.Destination.Resolve(),
		WeightKg:    payload.WeightKg,
		VolumeM3:    payload.VolumeM3,
	})
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFreightQuote(q))
}

func (h *FreightHandler) QuoteConsolidated(c *gin.Context) {
	var payload request.ConsolidatedQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	legs := make([]usecase.FreightLeg, 0, len(payload.Legs))
	for _, leg := range payload.Legs {
		legs = append(legs, usecase.FreightLeg{
			Origin:   leg.Origin.Resolve(),
			WeightKg: leg.WeightKg,
			VolumeM3: leg.VolumeM3,
		})
	}

	q, err := h.usecase.CalculateConsolidatedFreight(c.Request.Context(), legs, payload.Destination.Resolve())
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFreightQuote(q))
}

func (h *FreightHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Schedule(c.Request.Context(), usecase.BookingRequest{
		OrderID:       payload.OrderID,
		ItemID:        payload.ItemID,
		Quantity:      payload.Quantity,
		ScheduledDate: payload.ScheduledDate,
	}, payload.FreightValue, payload.Origin.Resolve(), payload.Destination.Resolve())
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(b))
}

func (h *FreightHandler) Reschedule(c *gin.Context) {
	var payload request.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Reschedule(c.Request.Context(), c.Param("id"), payload.ScheduledDate)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *FreightHandler) UpdateFreightValue(c *gin.Context) {
	var payload request.UpdateFreightValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateFreightValue(c.Request.Context(), c.Param("id"), payload.Value)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *FreightHandler) ValidateBatch(c *gin.Context) {
	var payload request.ValidateBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	reqs := make([]usecase.BookingRequest, 0, len(payload.Requests))
	for _, row := range payload.Requests {
		reqs = append(reqs, usecase.BookingRequest{
			OrderID:       row.OrderID,
			ItemID:        row.ItemID,
			Quantity:      row.Quantity,
			ScheduledDate: row.ScheduledDate,
		})
	}

	out, err := h.usecase.ValidateBatch(c.Request.Context(), reqs)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *FreightHandler) Cancel(c *gin.Context) {
	var payload struct {
		Reason string `json:"reason"`
	}
	// Body is optional on cancellation.
	_ = c.ShouldBindJSON(&payload)

	b, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(b))
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidScheduleDate),
		errors.Is(err, usecase.ErrInvalidFreightValue),
		errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFreightCalculation):
		return pkg.NewDomainError("CALCULATION_ERROR", "Freight could not be calculated", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrScheduling):
		return pkg.NewDomainError("SCHEDULING_ERROR", "Scheduling rejected", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotAccepted),
		errors.Is(err, usecase.ErrBookingCancelled),
		errors.Is(err, usecase.ErrCartExpired):
		return pkg.NewDomainError("INVALID_OPERATION", "Operation not allowed for this booking", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRateGatewayUnset):
		return pkg.NewDomainError("INTERNAL_ERROR", "Freight rate service unavailable", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
