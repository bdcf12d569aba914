package models

// Product represents an item in the inventory.
type Product struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string  `json:"name" gorm:"type:varchar(100);not null"`
	Price     float64 `json:"price" gorm:"not null"`
	Available bool    `json:"available" gorm:"not null"`
}

// TableName pins the table name used by the GORM store.
func (Product) TableName() string {
	return "products"
}

// ProductInput carries the writable fields of a product.
// Name is left unchanged on update when empty.
type ProductInput struct {
	Name      string
	Price     float64
	Available bool
}

// OrderBy describes how a product listing is sorted.
type OrderBy struct {
	Column string
	Desc   bool
}

// ByPriceDesc is the listing order exposed by the API.
var ByPriceDesc = OrderBy{Column: "price", Desc: true}
