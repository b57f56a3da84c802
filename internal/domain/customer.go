package domain

import "strings"

type Customer struct {
	ID   int64  `json:"customerId"`
	Name string `json:"customerName"`
}

func (c *Customer) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return NewValidationError("customerName", "is required")
	}

	return nil
}
