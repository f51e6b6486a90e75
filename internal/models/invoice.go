package models

import (
	"strings"
	"time"
)

// Invoice is the billing aggregate persisted by the repository. Total is
// computed once at construction and stored as-is.
type Invoice struct {
	ID    string        `json:"id"`
	Date  time.Time     `json:"date"`
	Items []InvoiceItem `json:"items"`
	Total float64       `json:"total"`
}

// InvoiceItem is one product line owned by its invoice. Items have no
// identity of their own and live only under their invoice id.
type InvoiceItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (i InvoiceItem) Validate() error {
	if strings.TrimSpace(i.Product) == "" {
		return ErrEmptyProduct
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.Price < 0 {
		return ErrInvalidPrice
	}
	return nil
}
