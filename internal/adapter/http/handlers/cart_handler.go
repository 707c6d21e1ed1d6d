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
	errInvalidCartPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler exposes the cart aggregate over HTTP: item mutations, totals
// and the interaction deadline.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	var payload request.CreateCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.CreateCart(c.Request.Context(), payload.ProducerID, payload.SupplierID, payload.DistributionPointID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(o))
}

func (h *CartHandler) GetCart(c *gin.Context) {
	o, err := h.usecase.GetCart(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	pctx, err := payload.Producer.Resolve()
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddItem(c.Request.Context(), c.Param("order_id"), payload.ProductID, payload.CatalogID, payload.Quantity, pctx)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	o, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("order_id"), c.Param("item_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	pctx, err := payload.Producer.Resolve()
	if err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.UpdateQuantity(c.Request.Context(), c.Param("order_id"), c.Param("item_id"), payload.Quantity, pctx)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *CartHandler) RecalculateTotals(c *gin.Context) {
	o, err := h.usecase.RecalculateTotals(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *CartHandler) ExtendDeadline(c *gin.Context) {
	var payload request.ExtendDeadlineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.ExtendDeadline(c.Request.Context(), c.Param("order_id"), payload.Days)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParty),
		errors.Is(err, usecase.ErrInvalidItemRef),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidDeadlineDays):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartExpired):
		return pkg.NewDomainErrorSimple("EXPIRED", "Interaction deadline has passed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCartNotOpen),
		errors.Is(err, usecase.ErrCatalogScopeMismatch),
		errors.Is(err, usecase.ErrOpenCartExists):
		return pkg.NewDomainError("INVALID_OPERATION", "Operation not allowed for this cart", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceNotFound),
		errors.Is(err, usecase.ErrCatalogNotCurrent):
		return pkg.NewDomainError("PRICE_NOT_FOUND", "No applicable price", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "Cart was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
