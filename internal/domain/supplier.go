package domain

import "strings"

type Supplier struct {
	ID   int64  `json:"supplierId"`
	Name string `json:"supplierName"`
}

func (s *Supplier) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return NewValidationError("supplierName", "is required")
	}

	return nil
}
