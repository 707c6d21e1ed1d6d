package request

import (
	"errors"
	"strings"

	"campo_direto/internal/domain/entities"
)

var (
	ErrInvalidProducerContext = errors.New("producer context requires producer_id and non-negative hectares")
)

// ProducerContextRequest travels with pricing-sensitive cart mutations so the
// resolver can judge bundle eligibility without a profile lookup.
type ProducerContextRequest struct {
	ProducerID  string  `json:"producer_id" binding:"required"`
	Hectares    float64 `json:"hectares"`
	MunicipioID string  `json:"municipio_id"`
}

func (r ProducerContextRequest) Resolve() (entities.ProducerContext, error) {
	id := strings.TrimSpace(r.ProducerID)
	if id == "" || r.Hectares < 0 {
		return entities.ProducerContext{}, ErrInvalidProducerContext
	}
	return entities.ProducerContext{
		ProducerID:  id,
		Hectares:    r.Hectares,
		MunicipioID: strings.TrimSpace(r.MunicipioID),
	}, nil
}

type CreateCartRequest struct {
	ProducerID          string `json:"producer_id" binding:"required"`
	SupplierID          string `json:"supplier_id" binding:"required"`
	DistributionPointID string `json:"distribution_point_id"`
}

type AddItemRequest struct {
	ProductID string                 `json:"product_id" binding:"required"`
	CatalogID string                 `json:"catalog_id" binding:"required"`
	Quantity  int                    `json:"quantity" binding:"required"`
	Producer  ProducerContextRequest `json:"producer" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int                    `json:"quantity" binding:"required"`
	Producer ProducerContextRequest `json:"producer" binding:"required"`
}

type ExtendDeadlineRequest struct {
	Days int `json:"days" binding:"required"`
}
