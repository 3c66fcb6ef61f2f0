package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Role tags what kind of user an account is. Only accounts with RoleCustomer
// may place orders; the creation pipeline checks this explicitly at the one
// call site that needs it.
type Role string

const (
	RoleCustomer     Role = "Customer"
	RoleEmployee     Role = "Employee"
	RoleKitchenStaff Role = "KitchenStaff"
	RoleManager      Role = "Manager"
)

// Customer is the read model the order pipeline consults about an account.
type Customer struct {
	ID   kernel.UUID
	Name string
	Role Role
}

// Product is the read model the order pipeline consults about a catalog item.
// Price and IsActive reflect current catalog state; the pipeline snapshots
// them into the order at build time.
type Product struct {
	ID       kernel.UUID
	Name     string
	Price    decimal.Decimal
	IsActive bool
}

// CustomerLookup resolves accounts by id. The pipeline never caches results:
// every creation attempt re-reads current state.
type CustomerLookup interface {
	// GetCustomer returns the account for the given id.
	// Fails with errs.ErrObjectNotFound when no such account exists.
	GetCustomer(ctx context.Context, id kernel.UUID) (Customer, error)
}

// ProductCatalog resolves catalog items by id. The pipeline never caches
// results: every creation attempt re-reads current price and availability.
type ProductCatalog interface {
	// GetProduct returns the catalog item for the given id.
	// Fails with errs.ErrObjectNotFound when no such product exists.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)
}
