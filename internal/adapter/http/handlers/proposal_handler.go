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
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid proposal payload", http.StatusBadRequest)
)

// ProposalHandler exposes the negotiation log: submitting turns and reading
// the history back in either direction.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	var payload request.SubmitProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SubmitProposal(c.Request.Context(), c.Param("order_id"),
		payload.ResolveSide(), payload.AuthorUserID, payload.ResolveAction(), payload.Note)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(p))
}

func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var payload request.ListProposalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	ps, err := h.usecase.ListProposals(c.Request.Context(), c.Param("order_id"),
		payload.NewestFirst, payload.Limit, payload.Offset)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(ps))
}

func (h *ProposalHandler) GetLatestProposal(c *gin.Context) {
	p, err := h.usecase.GetLatestProposal(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "No proposals for this order", http.StatusNotFound).ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(*p))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalSide),
		errors.Is(err, usecase.ErrInvalidProposalAction),
		errors.Is(err, usecase.ErrInvalidProposalAuthor):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartExpired):
		return pkg.NewDomainErrorSimple("EXPIRED", "Interaction deadline has passed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotNegotiable),
		errors.Is(err, usecase.ErrNegotiationDisabled):
		return pkg.NewDomainError("INVALID_OPERATION", "Negotiation move not allowed", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
