package handlers

import "github.com/J-Castrillon/InventoryManagement/internal/validation"

// Messages reported to API clients.
const (
	MessageNameRequired  = "El campo del nombre no puede ser nulo"
	MessagePriceRequired = "El campo del precio no puede ser nulo"
	MessageInvalidInput  = "Entrada no valida"
	MessageInvalidParam  = "Parametro incorrecto"
	MessageNotFound      = "Producto no encontrado"
	MessageDeleted       = "Producto eliminado"
	MessageInternalError = "Error interno del servidor"
)

// productID accepts a single numeric path parameter and reports at most one violation.
var productID = validation.Param("id",
	validation.Required(MessageInvalidParam),
	validation.Numeric(MessageInvalidParam),
).Bail()

var createProductRules = []validation.Field{
	validation.Body("name",
		validation.Required(MessageNameRequired),
	),
	validation.Body("price",
		validation.Numeric(MessageInvalidInput),
		validation.Positive(MessageInvalidInput),
		validation.Required(MessagePriceRequired),
	),
}

var updateProductRules = []validation.Field{
	validation.Body("price",
		validation.Numeric(MessageInvalidInput),
		validation.Positive(MessageInvalidInput),
	),
	validation.Body("available",
		validation.Boolean(MessageInvalidInput),
	),
	productID,
}

var productIDRules = []validation.Field{productID}
