package models

import (
	"errors"
)

var (
	ErrInvoiceNotFound  = errors.New("models: invoice not found")
	ErrDuplicateInvoice = errors.New("models: duplicate invoice id")
	ErrEmptyProduct     = errors.New("models: product name is empty")
	ErrInvalidQuantity  = errors.New("models: quantity must be positive")
	ErrInvalidPrice     = errors.New("models: price must not be negative")
	ErrNoItems          = errors.New("models: invoice has no items")
)
