package catalogrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CustomerLookup and ProductCatalog using
// GORM. Reads go against the live tables so apply-time validation always
// sees the current catalog state.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetCustomer retrieves a customer by ID.
func (r *GormCatalogRepository) GetCustomer(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	if err := id.Validate(); err != nil {
		return ports.Customer{}, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Customer{}, errs.NewObjectNotFoundError("customer", id.String())
		}
		return ports.Customer{}, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Customer{}, err
	}

	return ports.Customer{
		ID:   customerID,
		Name: dto.Name,
		Role: ports.Role(dto.Role),
	}, nil
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:       productID,
		Name:     dto.Name,
		Price:    dto.Price,
		IsActive: dto.IsActive,
	}, nil
}
