package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/J-Castrillon/InventoryManagement/internal/models"
	"github.com/J-Castrillon/InventoryManagement/internal/repositories"
	"github.com/J-Castrillon/InventoryManagement/internal/services"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, order models.OrderBy) ([]models.Product, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) ToggleAvailability(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func newService() (*services.ProductService, *MockProductRepository, *MockPublisher) {
	repo := new(MockProductRepository)
	publisher := new(MockPublisher)
	return services.NewProductService(repo, publisher, zap.NewNop()), repo, publisher
}

func TestProductService_ListProducts(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	expected := []models.Product{
		{ID: 2, Name: "CPU", Price: 500, Available: true},
		{ID: 1, Name: "Mouse", Price: 50, Available: true},
	}
	repo.On("List", ctx, models.ByPriceDesc).Return(expected, nil).Once()

	products, err := service.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	repo.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_GetProduct(t *testing.T) {
	service, repo, _ := newService()
	ctx := context.Background()

	expected := &models.Product{ID: 1, Name: "CPU", Price: 500, Available: true}
	repo.On("GetByID", ctx, uint(1)).Return(expected, nil).Once()
	product, err := service.GetProduct(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	repo.On("GetByID", ctx, uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrProductNotFound)).Once()
	product, err = service.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	repo.AssertExpectations(t)
}

func TestProductService_CreateProductPublishesEvent(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	input := models.ProductInput{Name: "Mouse test", Price: 50, Available: true}
	created := &models.Product{ID: 7, Name: "Mouse test", Price: 50, Available: true}
	repo.On("Create", ctx, input).Return(created, nil).Once()
	publisher.On("Publish", services.EventProductCreated, mock.AnythingOfType("[]uint8")).Return(nil).Once()

	product, err := service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, created, product)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)

	var event services.ProductEvent
	body := publisher.Calls[0].Arguments.Get(1).([]byte)
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, services.EventProductCreated, event.Type)
	assert.Equal(t, uint(7), event.ProductID)
	assert.Equal(t, created, event.Product)
}

func TestProductService_CreateProductFailureSkipsEvent(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	input := models.ProductInput{Name: "Mouse test", Price: 50, Available: true}
	repo.On("Create", ctx, input).Return(nil, fmt.Errorf("database error")).Once()

	_, err := service.CreateProduct(ctx, input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_PublishFailureDoesNotFailWrite(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	toggled := &models.Product{ID: 1, Name: "CPU", Price: 500, Available: false}
	repo.On("ToggleAvailability", ctx, uint(1)).Return(toggled, nil).Once()
	publisher.On("Publish", services.EventProductAvailabilityChanged, mock.Anything).Return(fmt.Errorf("channel closed")).Once()

	product, err := service.ToggleAvailability(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, toggled, product)
	publisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	input := models.ProductInput{Name: "Monitor", Price: 20, Available: true}
	updated := &models.Product{ID: 1, Name: "Monitor", Price: 20, Available: true}
	repo.On("Update", ctx, uint(1), input).Return(updated, nil).Once()
	publisher.On("Publish", services.EventProductUpdated, mock.Anything).Return(nil).Once()

	product, err := service.UpdateProduct(ctx, 1, input)
	assert.NoError(t, err)
	assert.Equal(t, updated, product)

	repo.On("Update", ctx, uint(2000), input).Return(nil, repositories.ErrProductNotFound).Once()
	_, err = service.UpdateProduct(ctx, 2000, input)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	repo.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestProductService_DeleteProduct(t *testing.T) {
	service, repo, publisher := newService()
	ctx := context.Background()

	repo.On("Delete", ctx, uint(1)).Return(nil).Once()
	publisher.On("Publish", services.EventProductDeleted, mock.Anything).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, 1))

	repo.On("Delete", ctx, uint(99)).Return(repositories.ErrProductNotFound).Once()
	err := service.DeleteProduct(ctx, 99)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	repo.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestProductService_WithoutPublisher(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo, nil, zap.NewNop())
	ctx := context.Background()

	repo.On("Delete", ctx, uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, 1))
	repo.AssertExpectations(t)
}
