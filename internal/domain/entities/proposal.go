package entities

import "time"

// ProposalAction is one of the three negotiation moves.
type ProposalAction string

const (
	ProposalActionContraproposta ProposalAction = "contraproposta"
	ProposalActionAceitar        ProposalAction = "aceitar"
	ProposalActionRejeitar       ProposalAction = "rejeitar"
)

// Valid reports whether the action is one of the known moves.
func (a ProposalAction) Valid() bool {
	switch a {
	case ProposalActionContraproposta, ProposalActionAceitar, ProposalActionRejeitar:
		return true
	}
	return false
}

// CartStatusAfter maps the action to the order status it induces.
func (a ProposalAction) CartStatusAfter() CartStatus {
	switch a {
	case ProposalActionAceitar:
		return CartStatusAceito
	case ProposalActionRejeitar:
		return CartStatusRejeitado
	default:
		return CartStatusEmNegociacao
	}
}

// ProposalSide identifies which party authored a turn. Exactly one of the
// author user ids is set per proposal, never both.
type ProposalSide string

const (
	ProposalSideProdutor   ProposalSide = "produtor"
	ProposalSideFornecedor ProposalSide = "fornecedor"
)

// Valid reports whether the side is one of the two parties.
func (s ProposalSide) Valid() bool {
	return s == ProposalSideProdutor || s == ProposalSideFornecedor
}

// Proposal is one immutable turn of the negotiation log. Rows are append-only;
// (CreatedAt, Seq) is the total ordering key, with Seq handed out by the
// order aggregate so concurrent inserts cannot tie.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id, sorted by seq
type Proposal struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"order_id"`
	Seq            int64          `json:"seq"`
	Side           ProposalSide   `json:"side"`
	ProducerUserID string         `json:"producer_user_id,omitempty"`
	SupplierUserID string         `json:"supplier_user_id,omitempty"`
	Action         ProposalAction `json:"action"`
	Note           string         `json:"note,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
