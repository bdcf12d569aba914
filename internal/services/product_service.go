package services

import (
	"context"

	"github.com/J-Castrillon/InventoryManagement/internal/models"
	"github.com/J-Castrillon/InventoryManagement/internal/repositories"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Routing keys of the product lifecycle events.
const (
	EventProductCreated             = "product.created"
	EventProductUpdated             = "product.updated"
	EventProductAvailabilityChanged = "product.availability_changed"
	EventProductDeleted             = "product.deleted"
)

// Publisher delivers an encoded event under a routing key.
type Publisher interface {
	Publish(routingKey string, body []byte) error
}

// ProductEvent is the body of a product lifecycle event.
type ProductEvent struct {
	Type      string          `json:"type"`
	ProductID uint            `json:"product_id"`
	Product   *models.Product `json:"product,omitempty"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher Publisher
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, publisher Publisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListProducts retrieves all products, most expensive first.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx, models.ByPriceDesc)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.publish(EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct replaces the writable fields of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.publish(EventProductUpdated, product.ID, product)
	return product, nil
}

// ToggleAvailability flips whether a product is available.
func (s *ProductService) ToggleAvailability(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.ToggleAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(EventProductAvailabilityChanged, product.ID, product)
	return product, nil
}

// DeleteProduct permanently removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(EventProductDeleted, id, nil)
	return nil
}

// publish emits an event after a successful write. Failures are logged only;
// the write has already happened.
func (s *ProductService) publish(eventType string, id uint, product *models.Product) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(ProductEvent{Type: eventType, ProductID: id, Product: product})
	if err != nil {
		s.logger.Error("failed to encode product event", zap.String("event", eventType), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(eventType, body); err != nil {
		s.logger.Warn("failed to publish product event",
			zap.String("event", eventType),
			zap.Uint("product_id", id),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("published product event", zap.String("event", eventType), zap.Uint("product_id", id))
}
