package interfaces

import (
	"context"

	"campo_direto/internal/domain/entities"
)

// ICatalogRepository is the read side onto reference-data owned catalogs and
// promotional bundles. Implementations validate tier lists and bundle ranges
// at load time; a short-TTL cache decorator satisfies the same interface.
//
// Reads return a zero-value Catalog when the id does not exist.
type ICatalogRepository interface {
	GetCatalog(ctx context.Context, id string) (entities.Catalog, error)
	ListBundlesBySupplier(ctx context.Context, supplierID string) ([]entities.Bundle, error)
}
