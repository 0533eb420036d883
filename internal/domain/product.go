package domain

import "github.com/shopspring/decimal"

// Product is the subset of a product returned by /categories/{id}/products.
type Product struct {
	ID           ID               `json:"id"`
	ProductName  string           `json:"productName"`
	SKU          string           `json:"sku"`
	Price        decimal.Decimal  `json:"price"`
	SalePrice    *decimal.Decimal `json:"salePrice"`
	Stock        int              `json:"stock"`
	Status       bool             `json:"status"`
	CategoryName string           `json:"categoryName"`
	SizeName     string           `json:"sizeName"`
}

// EffectivePrice is the sale price when one is set below the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil && p.SalePrice.IsPositive() && p.SalePrice.LessThan(p.Price) {
		return *p.SalePrice
	}
	return p.Price
}
