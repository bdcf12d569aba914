package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/J-Castrillon/InventoryManagement/internal/middleware"
	"github.com/J-Castrillon/InventoryManagement/internal/models"
	"github.com/J-Castrillon/InventoryManagement/internal/repositories"
	"github.com/J-Castrillon/InventoryManagement/internal/response"
	"github.com/J-Castrillon/InventoryManagement/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductService defines only the methods the handlers need from the product service.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error)
	ToggleAvailability(ctx context.Context, id uint) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber router. Every
// route taking input runs its validation gate before the handler.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", middleware.Validate(productIDRules...), h.HandleGetProductByID)
	productRoutes.Post("/", middleware.Validate(createProductRules...), h.HandleCreateProduct)
	productRoutes.Put("/:id", middleware.Validate(updateProductRules...), h.HandleUpdateProduct)
	productRoutes.Patch("/:id", middleware.Validate(productIDRules...), h.HandleToggleAvailability)
	productRoutes.Delete("/:id", middleware.Validate(productIDRules...), h.HandleDeleteProduct)
}

// HandleGetProducts lists every product, most expensive first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		return h.fail(c, "list products", err)
	}
	return response.Success(c, fiber.StatusOK, "products", products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := productIDFrom(middleware.RequestInput(c))
	if !ok {
		return response.Error(c, fiber.StatusNotFound, MessageNotFound)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "get product", err)
	}
	return response.Success(c, fiber.StatusOK, "product", product)
}

// HandleCreateProduct creates a product. It is available unless the body says otherwise.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in := middleware.RequestInput(c)

	price, _ := validation.AsFloat(in.Body["price"])
	input := models.ProductInput{
		Name:      validation.AsText(in.Body["name"]),
		Price:     price,
		Available: true,
	}
	if available, ok := validation.AsBool(in.Body["available"]); ok {
		input.Available = available
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return h.fail(c, "create product", err)
	}
	return response.Success(c, fiber.StatusCreated, "product", product)
}

// HandleUpdateProduct replaces the price and availability of a product, and
// its name when a non-empty one is given.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	in := middleware.RequestInput(c)
	id, ok := productIDFrom(in)
	if !ok {
		return response.Error(c, fiber.StatusNotFound, MessageNotFound)
	}

	price, _ := validation.AsFloat(in.Body["price"])
	available, _ := validation.AsBool(in.Body["available"])
	input := models.ProductInput{
		Name:      validation.AsText(in.Body["name"]),
		Price:     price,
		Available: available,
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return h.fail(c, "update product", err)
	}
	return response.Success(c, fiber.StatusOK, "product", product)
}

// HandleToggleAvailability flips the availability of a product.
func (h *ProductHandler) HandleToggleAvailability(c *fiber.Ctx) error {
	id, ok := productIDFrom(middleware.RequestInput(c))
	if !ok {
		return response.Error(c, fiber.StatusNotFound, MessageNotFound)
	}

	product, err := h.service.ToggleAvailability(c.UserContext(), id)
	if err != nil {
		return h.fail(c, "toggle product availability", err)
	}
	return response.Success(c, fiber.StatusOK, "product", product)
}

// HandleDeleteProduct permanently removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productIDFrom(middleware.RequestInput(c))
	if !ok {
		return response.Error(c, fiber.StatusNotFound, MessageNotFound)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return h.fail(c, "delete product", err)
	}
	return response.Message(c, fiber.StatusOK, MessageDeleted)
}

// fail maps a service error to its envelope. Anything but a missing product is
// logged and reported as an internal error.
func (h *ProductHandler) fail(c *fiber.Ctx, op string, err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return response.Error(c, fiber.StatusNotFound, MessageNotFound)
	}

	h.logger.Error("failed to "+op,
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err),
	)
	return response.Error(c, fiber.StatusInternalServerError, MessageInternalError)
}

// productIDFrom parses the validated id parameter. Numeric values that cannot
// name a stored product, such as fractions or negatives, report false.
func productIDFrom(in validation.Input) (uint, bool) {
	id, err := strconv.ParseUint(in.Params["id"], 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
