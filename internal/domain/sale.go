package domain

import "time"

// Sale é imutável após criada; só pode ser removida
type Sale struct {
	ID         int64     `json:"salesId"`
	CustomerID int64     `json:"customerId"`
	ProductID  int64     `json:"productId"`
	Quantity   int       `json:"productQty"`
	Date       time.Time `json:"salesDate"`
}

type CreateSaleRequest struct {
	CustomerID int64 `json:"customerId"`
	ProductID  int64 `json:"productId"`
	Quantity   int   `json:"productQty"`
}

func (r *CreateSaleRequest) Validate() error {
	if r.CustomerID <= 0 {
		return NewValidationError("customerId", "must be greater than zero")
	}

	if r.ProductID <= 0 {
		return NewValidationError("productId", "must be greater than zero")
	}

	if r.Quantity <= 0 {
		return NewValidationError("productQty", "must be greater than zero")
	}

	return nil
}
