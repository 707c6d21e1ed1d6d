package response

import (
	"time"

	"campo_direto/internal/domain/entities"
)

type ProposalResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	Seq            int64     `json:"seq"`
	Side           string    `json:"side"`
	ProducerUserID string    `json:"producer_user_id,omitempty"`
	SupplierUserID string    `json:"supplier_user_id,omitempty"`
	Action         string    `json:"action"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		Seq:            p.Seq,
		Side:           string(p.Side),
		ProducerUserID: p.ProducerUserID,
		SupplierUserID: p.SupplierUserID,
		Action:         string(p.Action),
		Note:           p.Note,
		CreatedAt:      p.CreatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
