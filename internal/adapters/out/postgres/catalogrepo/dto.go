// Package catalogrepo provides read-only access to the customer and product
// catalog tables. Orders snapshot names and prices from here at apply time;
// nothing in this package writes.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for registered customers.
type CustomerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// ProductDTO represents the database structure for menu products. Inactive
// products stay on the table for historical orders but cannot be ordered.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}
