package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/J-Castrillon/InventoryManagement/internal/models"
)

var (
	// ErrProductNotFound is returned when no product matches the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidOrder is returned when a listing is sorted by an unknown column.
	ErrInvalidOrder = errors.New("invalid order column")
)

// ProductRepository defines the interface for product data access.
// Every method operates on a single row and returns fresh copies.
type ProductRepository interface {
	List(ctx context.Context, order models.OrderBy) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error)
	ToggleAvailability(ctx context.Context, id uint) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

var sortableColumns = map[string]bool{
	"id":        true,
	"name":      true,
	"price":     true,
	"available": true,
}

func checkOrder(order models.OrderBy) error {
	if !sortableColumns[order.Column] {
		return fmt.Errorf("%w: %q", ErrInvalidOrder, order.Column)
	}
	return nil
}
