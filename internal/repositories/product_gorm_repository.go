package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/J-Castrillon/InventoryManagement/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves all products sorted by the given column.
func (r *GORMProductRepository) List(ctx context.Context, order models.OrderBy) ([]models.Product, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}

	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: order.Column}, Desc: order.Desc}).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return first(r.db.WithContext(ctx), id)
}

// Create inserts a new product and returns it with its assigned ID.
func (r *GORMProductRepository) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := models.Product{
		Name:      input.Name,
		Price:     input.Price,
		Available: input.Available,
	}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update replaces the price and availability of a product, and its name when one is given.
func (r *GORMProductRepository) Update(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	var updated *models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := first(tx, id)
		if err != nil {
			return err
		}

		// A map keeps zero values such as available=false in the UPDATE.
		changes := map[string]any{
			"price":     input.Price,
			"available": input.Available,
		}
		if input.Name != "" {
			changes["name"] = input.Name
		}
		if err := tx.Model(product).Updates(changes).Error; err != nil {
			return fmt.Errorf("failed to update product %d: %w", id, err)
		}

		updated, err = first(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleAvailability flips the available flag of a product in a single statement.
func (r *GORMProductRepository) ToggleAvailability(ctx context.Context, id uint) (*models.Product, error) {
	var toggled *models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ?", id).
			Update("available", gorm.Expr("NOT available"))
		if res.Error != nil {
			return fmt.Errorf("failed to toggle availability of product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
		}

		var err error
		toggled, err = first(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// Delete permanently removes a product by its ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return nil
}

func first(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}
