package repositories

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/J-Castrillon/InventoryManagement/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// List returns all products sorted by the given column. Ties keep ID order.
func (r *MemoryProductRepository) List(_ context.Context, order models.OrderBy) ([]models.Product, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool {
		return productList[i].ID < productList[j].ID
	})

	less := lessBy(order.Column)
	sort.SliceStable(productList, func(i, j int) bool {
		if order.Desc {
			return less(productList[j], productList[i])
		}
		return less(productList[i], productList[j])
	})
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(_ context.Context, id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product and assigns it the next ID.
func (r *MemoryProductRepository) Create(_ context.Context, input models.ProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := models.Product{
		ID:        r.nextID,
		Name:      input.Name,
		Price:     input.Price,
		Available: input.Available,
	}
	r.nextID++
	r.products[product.ID] = product
	return &product, nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	product.Price = input.Price
	product.Available = input.Available
	r.products[id] = product
	return &product, nil
}

// ToggleAvailability flips the available flag of a product.
func (r *MemoryProductRepository) ToggleAvailability(_ context.Context, id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	product.Available = !product.Available
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

func lessBy(column string) func(a, b models.Product) bool {
	switch column {
	case "name":
		return func(a, b models.Product) bool { return strings.Compare(a.Name, b.Name) < 0 }
	case "price":
		return func(a, b models.Product) bool { return a.Price < b.Price }
	case "available":
		return func(a, b models.Product) bool { return !a.Available && b.Available }
	default:
		return func(a, b models.Product) bool { return a.ID < b.ID }
	}
}
