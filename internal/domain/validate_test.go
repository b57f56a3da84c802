package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_Validate(t *testing.T) {
	customer := &Customer{Name: "  Ana  "}
	require.NoError(t, customer.Validate())
	assert.Equal(t, "Ana", customer.Name)

	err := (&Customer{Name: "   "}).Validate()
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "customerName is required")
}

func TestSupplier_Validate(t *testing.T) {
	assert.NoError(t, (&Supplier{Name: "Papelaria Central"}).Validate())
	assert.ErrorIs(t, (&Supplier{}).Validate(), ErrValidation)
}

// acima da faixa de product_stock (INTEGER)
var oversizedStock int64 = 5_000_000_000

func TestProduct_Validate(t *testing.T) {
	valid := func() *Product {
		return &Product{
			Name:       "Caderno",
			Price:      decimal.RequireFromString("18.90"),
			Stock:      0,
			SupplierID: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Product)
		field   string
		wantErr bool
	}{
		{name: "válido com estoque zero", mutate: func(p *Product) {}},
		{name: "sem nome", mutate: func(p *Product) { p.Name = "" }, field: "productName", wantErr: true},
		{name: "preço zero", mutate: func(p *Product) { p.Price = decimal.Zero }, field: "productPrice", wantErr: true},
		{name: "preço negativo", mutate: func(p *Product) { p.Price = decimal.NewFromInt(-1) }, field: "productPrice", wantErr: true},
		{name: "estoque negativo", mutate: func(p *Product) { p.Stock = -1 }, field: "productStock", wantErr: true},
		{name: "estoque no limite do INTEGER", mutate: func(p *Product) { p.Stock = math.MaxInt32 }},
		{name: "estoque acima do limite do INTEGER", mutate: func(p *Product) { p.Stock = int(oversizedStock) }, field: "productStock", wantErr: true},
		{name: "sem fornecedor", mutate: func(p *Product) { p.SupplierID = 0 }, field: "supplierId", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := valid()
			tt.mutate(product)

			err := product.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCreateSaleRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateSaleRequest
		field   string
	}{
		{"válida", CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: 3}, ""},
		{"sem cliente", CreateSaleRequest{ProductID: 2, Quantity: 3}, "customerId"},
		{"sem produto", CreateSaleRequest{CustomerID: 1, Quantity: 3}, "productId"},
		{"quantidade zero", CreateSaleRequest{CustomerID: 1, ProductID: 2}, "productQty"},
		{"quantidade negativa", CreateSaleRequest{CustomerID: 1, ProductID: 2, Quantity: -4}, "productQty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
