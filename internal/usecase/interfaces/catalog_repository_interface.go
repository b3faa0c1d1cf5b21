package interfaces

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fluxo_propostas/internal/domain/entities"
)

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	// FindByDocumentOrName matches by document when it is not empty, else by exact name.
	FindByDocumentOrName(ctx context.Context, document, name string) (entities.Client, error)
}

// IProductRepository persists the catalog. The SKU is the dedup key.
type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	FindUnskuedByName(ctx context.Context, name string) (entities.Product, error)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	// UpsertBySKU returns the stored product for p.SKU, creating it when unseen.
	// Known dimensions are never cleared by an upsert.
	UpsertBySKU(ctx context.Context, p entities.Product) (entities.Product, error)
}

type ISellerRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Seller, error)
	FindByName(ctx context.Context, name string) (entities.Seller, error)
}

type ICarrierRepository interface {
	GetByID(ctx context.Context, id string) (entities.Carrier, error)
	List(ctx context.Context) ([]entities.Carrier, error)
}

type IBoxRepository interface {
	GetByID(ctx context.Context, id string) (entities.Box, error)
	List(ctx context.Context) ([]entities.Box, error)
}
