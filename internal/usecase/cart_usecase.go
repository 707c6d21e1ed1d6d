package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campo_direto/internal/domain/entities"
	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrItemNotFound         = errors.New("order item not found")
	ErrCartNotOpen          = errors.New("cart is not open")
	ErrCartExpired          = errors.New("interaction deadline has passed")
	ErrCatalogScopeMismatch = errors.New("catalog does not match order distribution scope")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidDeadlineDays  = errors.New("deadline extension days must be positive")
	ErrInvalidParty         = errors.New("producer and supplier ids are required")
	ErrInvalidItemRef       = errors.New("product and catalog ids are required")
	ErrOpenCartExists       = errors.New("an open cart already exists for this producer and supplier")
	ErrConcurrencyConflict  = errors.New("concurrent modification, retry with fresh state")
)

// versionRetries bounds the optimistic-concurrency retry loop; after that the
// conflict surfaces to the caller, who refetches and retries.
const versionRetries = 3

const defaultDeadlineDays = 7

// ICartUseCase owns the cart aggregate: item mutations, the totals fold and
// the interaction deadline. All mutations are serialized per order through
// the aggregate's version token.
type ICartUseCase interface {
	CreateCart(ctx context.Context, producerID, supplierID, distributionPointID string) (entities.Order, error)
	GetCart(ctx context.Context, orderID string) (entities.Order, error)
	AddItem(ctx context.Context, orderID, productID, catalogID string, quantity int, pctx entities.ProducerContext) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error)
	UpdateQuantity(ctx context.Context, orderID, itemID string, quantity int, pctx entities.ProducerContext) (entities.Order, error)
	RecalculateTotals(ctx context.Context, orderID string) (entities.Order, error)
	ExtendDeadline(ctx context.Context, orderID string, days int) (entities.Order, error)
}

type CartUseCase struct {
	orders   interfaces.IOrderRepository
	catalogs interfaces.ICatalogRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(orders interfaces.IOrderRepository, catalogs interfaces.ICatalogRepository) *CartUseCase {
	return &CartUseCase{orders: orders, catalogs: catalogs}
}

func (u *CartUseCase) CreateCart(ctx context.Context, producerID, supplierID, distributionPointID string) (entities.Order, error) {
	producerID = strings.TrimSpace(producerID)
	supplierID = strings.TrimSpace(supplierID)
	if producerID == "" || supplierID == "" {
		return entities.Order{}, ErrInvalidParty
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:                  uuid.NewString(),
		ProducerID:          producerID,
		SupplierID:          supplierID,
		DistributionPointID: strings.TrimSpace(distributionPointID),
		CartStatus:          entities.CartStatusAberto,
		AllowNegotiation:    true,
		Items:               []entities.OrderItem{},
		InteractionDeadline: now.AddDate(0, 0, defaultDeadlineDays),
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Order{}, ErrOpenCartExists
		}
		return entities.Order{}, err
	}
	logger.S().Infow("cart created", "order_id", created.ID, "producer_id", producerID, "supplier_id", supplierID)
	return created, nil
}

func (u *CartUseCase) GetCart(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	// Expiry is observed lazily on read, never written back here.
	o.CartStatus = o.EffectiveCartStatus(time.Now().UTC())
	return o, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, orderID, productID, catalogID string, quantity int, pctx entities.ProducerContext) (entities.Order, error) {
	productID = strings.TrimSpace(productID)
	catalogID = strings.TrimSpace(catalogID)
	if productID == "" || catalogID == "" {
		return entities.Order{}, ErrInvalidItemRef
	}
	if quantity <= 0 {
		return entities.Order{}, ErrInvalidQuantity
	}

	return u.mutateOrder(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := requireOpen(o, now); err != nil {
			return err
		}
		cat, err := u.catalogs.GetCatalog(ctx, catalogID)
		if err != nil {
			return err
		}
		if cat.ID == "" {
			return fmt.Errorf("%w: catalog %s", ErrPriceNotFound, catalogID)
		}
		if cat.DistributionPointID != o.DistributionPointID {
			return ErrCatalogScopeMismatch
		}

		// Merging an existing line re-resolves the price for the summed
		// quantity, so the tier can change on merge exactly as on update.
		newQty := quantity
		var existing *entities.OrderItem
		for i := range o.Items {
			if o.Items[i].ProductID == productID && o.Items[i].CatalogID == catalogID {
				existing = &o.Items[i]
				newQty += o.Items[i].Quantity
				break
			}
		}

		resolved, item, err := u.resolve(ctx, cat, productID, newQty, o.SupplierID, pctx, now)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Quantity = newQty
			applyResolved(existing, resolved)
		} else {
			line := entities.OrderItem{
				ID:         uuid.NewString(),
				ProductID:  productID,
				CategoryID: item.CategoryID,
				CatalogID:  catalogID,
				Quantity:   newQty,
				UnitWeight: item.UnitWeight,
				UnitVolume: item.UnitVolume,
			}
			applyResolved(&line, resolved)
			o.Items = append(o.Items, line)
		}
		o.RecalculateTotals()
		return nil
	})
}

func (u *CartUseCase) RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error) {
	return u.mutateOrder(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := requireOpen(o, now); err != nil {
			return err
		}
		if !o.RemoveItem(itemID) {
			return ErrItemNotFound
		}
		o.RecalculateTotals()
		return nil
	})
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, orderID, itemID string, quantity int, pctx entities.ProducerContext) (entities.Order, error) {
	if quantity <= 0 {
		return entities.Order{}, ErrInvalidQuantity
	}
	return u.mutateOrder(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if err := requireOpen(o, now); err != nil {
			return err
		}
		item := o.ItemByID(itemID)
		if item == nil {
			return ErrItemNotFound
		}
		cat, err := u.catalogs.GetCatalog(ctx, item.CatalogID)
		if err != nil {
			return err
		}
		if cat.ID == "" {
			return fmt.Errorf("%w: catalog %s", ErrPriceNotFound, item.CatalogID)
		}
		// The tier may change with the quantity, so the price is re-resolved.
		resolved, _, err := u.resolve(ctx, cat, item.ProductID, quantity, o.SupplierID, pctx, now)
		if err != nil {
			return err
		}
		item.Quantity = quantity
		applyResolved(item, resolved)
		o.RecalculateTotals()
		return nil
	})
}

func (u *CartUseCase) RecalculateTotals(ctx context.Context, orderID string) (entities.Order, error) {
	return u.mutateOrder(ctx, orderID, func(o *entities.Order, now time.Time) error {
		o.RecalculateTotals()
		return nil
	})
}

func (u *CartUseCase) ExtendDeadline(ctx context.Context, orderID string, days int) (entities.Order, error) {
	if days <= 0 {
		return entities.Order{}, ErrInvalidDeadlineDays
	}
	return u.mutateOrder(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.CartStatus.IsTerminal() {
			// No effect on a closed order.
			return nil
		}
		// Monotonic: the deadline never moves backwards.
		candidate := now.AddDate(0, 0, days)
		if candidate.After(o.InteractionDeadline) {
			o.InteractionDeadline = candidate
		}
		return nil
	})
}

func (u *CartUseCase) resolve(ctx context.Context, cat entities.Catalog, productID string, quantity int, supplierID string, pctx entities.ProducerContext, at time.Time) (ResolvedPrice, entities.CatalogItem, error) {
	bundles, err := u.catalogs.ListBundlesBySupplier(ctx, supplierID)
	if err != nil {
		return ResolvedPrice{}, entities.CatalogItem{}, err
	}
	resolved, err := ResolveUnitPrice(cat, productID, quantity, bundles, pctx, at)
	if err != nil {
		return ResolvedPrice{}, entities.CatalogItem{}, err
	}
	item, _ := cat.ItemForProduct(productID)
	return resolved, item, nil
}

// mutateOrder runs the read-mutate-CAS loop the aggregate boundary requires:
// every attempt re-reads the order, applies the mutation against fresh state
// and writes back with the version token. Bounded retries, then the conflict
// is the caller's to handle.
func (u *CartUseCase) mutateOrder(ctx context.Context, orderID string, mutate func(o *entities.Order, now time.Time) error) (entities.Order, error) {
	for attempt := 0; attempt < versionRetries; attempt++ {
		o, err := u.loadOrder(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		now := time.Now().UTC()
		if err := mutate(&o, now); err != nil {
			return entities.Order{}, err
		}
		o.UpdatedAt = now
		saved, err := u.orders.UpdateWithVersion(ctx, o, o.Version)
		if err != nil {
			if errors.Is(err, interfaces.ErrVersionConflict) {
				logger.S().Debugw("order version conflict, retrying", "order_id", orderID, "attempt", attempt+1)
				continue
			}
			return entities.Order{}, err
		}
		return saved, nil
	}
	return entities.Order{}, ErrConcurrencyConflict
}

func (u *CartUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func requireOpen(o *entities.Order, now time.Time) error {
	switch o.EffectiveCartStatus(now) {
	case entities.CartStatusAberto:
		return nil
	case entities.CartStatusExpirado:
		return ErrCartExpired
	default:
		return ErrCartNotOpen
	}
}

func applyResolved(item *entities.OrderItem, r ResolvedPrice) {
	item.UnitPrice = r.UnitPrice
	item.DiscountPercent = r.DiscountPercent
	item.DiscountValue = r.DiscountValue
	item.AppliedBundleID = r.AppliedBundleID
	item.Recalculate()
}
