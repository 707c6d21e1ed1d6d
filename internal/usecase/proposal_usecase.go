package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/infrastructure/metrics"
	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidProposalSide   = errors.New("invalid proposal side")
	ErrInvalidProposalAction = errors.New("invalid proposal action")
	ErrInvalidProposalAuthor = errors.New("proposal author user id is required")
	ErrOrderNotNegotiable    = errors.New("order is not in a negotiable state")
	ErrNegotiationDisabled   = errors.New("negotiation is disabled for this order")
)

const defaultProposalPageSize = 20

// IProposalUseCase is the negotiation protocol layered over the order
// aggregate: an append-only proposal log whose latest entry determines the
// current terms and order status.
type IProposalUseCase interface {
	SubmitProposal(ctx context.Context, orderID string, side entities.ProposalSide, authorUserID string, action entities.ProposalAction, note string) (entities.Proposal, error)
	ListProposals(ctx context.Context, orderID string, newestFirst bool, limit, offset int) ([]entities.Proposal, error)
	GetLatestProposal(ctx context.Context, orderID string) (*entities.Proposal, error)
}

type ProposalUseCase struct {
	orders    interfaces.IOrderRepository
	proposals interfaces.IProposalRepository
	notifier  interfaces.INotifier
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(orders interfaces.IOrderRepository, proposals interfaces.IProposalRepository, notifier interfaces.INotifier) *ProposalUseCase {
	return &ProposalUseCase{orders: orders, proposals: proposals, notifier: notifier}
}

func (u *ProposalUseCase) SubmitProposal(ctx context.Context, orderID string, side entities.ProposalSide, authorUserID string, action entities.ProposalAction, note string) (entities.Proposal, error) {
	orderID = strings.TrimSpace(orderID)
	authorUserID = strings.TrimSpace(authorUserID)
	if orderID == "" {
		return entities.Proposal{}, ErrOrderNotFound
	}
	if !side.Valid() {
		return entities.Proposal{}, ErrInvalidProposalSide
	}
	if !action.Valid() {
		return entities.Proposal{}, ErrInvalidProposalAction
	}
	if authorUserID == "" {
		return entities.Proposal{}, ErrInvalidProposalAuthor
	}

	// The status precondition and the append commit together under the order's
	// version token: a concurrent terminal transition invalidates the token
	// and this attempt re-reads fresh state instead of acting on a stale one.
	for attempt := 0; attempt < versionRetries; attempt++ {
		o, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Proposal{}, err
		}
		if o.ID == "" {
			return entities.Proposal{}, ErrOrderNotFound
		}

		now := time.Now().UTC()
		effective := o.EffectiveCartStatus(now)
		if effective == entities.CartStatusExpirado {
			return entities.Proposal{}, ErrCartExpired
		}
		if !effective.IsNegotiable() {
			return entities.Proposal{}, ErrOrderNotNegotiable
		}
		if !o.AllowNegotiation && action == entities.ProposalActionContraproposta {
			return entities.Proposal{}, ErrNegotiationDisabled
		}

		p := entities.Proposal{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Seq:       o.ProposalSeq + 1,
			Side:      side,
			Action:    action,
			Note:      strings.TrimSpace(note),
			CreatedAt: now,
		}
		// Exactly one author side per proposal.
		if side == entities.ProposalSideProdutor {
			p.ProducerUserID = authorUserID
		} else {
			p.SupplierUserID = authorUserID
		}

		expected := o.Version
		o.CartStatus = action.CartStatusAfter()
		o.ProposalSeq = p.Seq
		o.UpdatedAt = now

		appended, err := u.proposals.Append(ctx, p, o, expected)
		if err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				logger.S().Debugw("proposal append lost version race, retrying", "order_id", orderID, "attempt", attempt+1)
				continue
			}
			return entities.Proposal{}, err
		}

		u.notify(ctx, o, appended)
		metrics.ProposalsSubmitted.WithLabelValues(string(action)).Inc()
		logger.S().Infow("proposal appended",
			"order_id", o.ID, "proposal_id", appended.ID, "seq", appended.Seq,
			"side", side, "action", action, "cart_status", o.CartStatus)
		return appended, nil
	}
	return entities.Proposal{}, ErrConcurrencyConflict
}

func (u *ProposalUseCase) ListProposals(ctx context.Context, orderID string, newestFirst bool, limit, offset int) ([]entities.Proposal, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	if limit <= 0 {
		limit = defaultProposalPageSize
	}
	if offset < 0 {
		offset = 0
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.proposals.ListByOrderID(ctx, orderID, newestFirst, limit, offset)
}

func (u *ProposalUseCase) GetLatestProposal(ctx context.Context, orderID string) (*entities.Proposal, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}
	p, err := u.proposals.GetLatestByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, nil
	}
	return &p, nil
}

func (u *ProposalUseCase) notify(ctx context.Context, o entities.Order, p entities.Proposal) {
	if u.notifier == nil {
		return
	}
	event := interfaces.NotificationEvent{
		Type:    "proposal." + string(p.Action),
		OrderID: o.ID,
		Detail: map[string]any{
			"proposal_id": p.ID,
			"side":        string(p.Side),
			"cart_status": string(o.CartStatus),
		},
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		logger.S().Warnw("proposal notification failed", "order_id", o.ID, "error", err)
	}
}
