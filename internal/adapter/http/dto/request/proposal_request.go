package request

import (
	"strings"

	"campo_direto/internal/domain/entities"
)

type SubmitProposalRequest struct {
	Side         string `json:"side" binding:"required"`
	AuthorUserID string `json:"author_user_id" binding:"required"`
	Action       string `json:"action" binding:"required"`
	Note         string `json:"note"`
}

// ResolveSide and ResolveAction normalize casing; validity is judged by the
// usecase so unknown values surface as domain errors, not binding failures.
func (r SubmitProposalRequest) ResolveSide() entities.ProposalSide {
	return entities.ProposalSide(strings.ToLower(strings.TrimSpace(r.Side)))
}

func (r SubmitProposalRequest) ResolveAction() entities.ProposalAction {
	return entities.ProposalAction(strings.ToLower(strings.TrimSpace(r.Action)))
}

type ListProposalsRequest struct {
	NewestFirst bool `json:"newest_first"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
}
