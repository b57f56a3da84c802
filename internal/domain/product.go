package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Valores monetários saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID         int64           `json:"productId"`
	Name       string          `json:"productName"`
	Price      decimal.Decimal `json:"productPrice"`
	Stock      int             `json:"productStock"`
	SupplierID int64           `json:"supplierId"`
}

func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return NewValidationError("productName", "is required")
	}

	if !p.Price.IsPositive() {
		return NewValidationError("productPrice", "must be greater than zero")
	}

	if p.Stock < 0 {
		return NewValidationError("productStock", "must not be negative")
	}

	if p.Stock > math.MaxInt32 {
		return NewValidationError("productStock", "must not exceed 2147483647")
	}

	if p.SupplierID <= 0 {
		return NewValidationError("supplierId", "must be greater than zero")
	}

	return nil
}

// LowStockProduct é um produto abaixo do limite de estoque, com o nome do fornecedor
type LowStockProduct struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	ProductStock int    `json:"productStock"`
	SupplierName string `json:"supplierName"`
}
