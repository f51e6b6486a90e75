package factory

import (
	"time"

	"github.com/google/uuid"

	"invoiceBack/internal/models"
)

// CreateInvoice builds a new invoice from the given items: fresh uuid,
// today's date, total as the sum of quantity*price. The input slice is
// copied, order preserved.
func CreateInvoice(items []models.InvoiceItem) models.Invoice {
	copied := make([]models.InvoiceItem, len(items))
	copy(copied, items)

	total := 0.0
	for _, item := range copied {
		total += float64(item.Quantity) * item.Price
	}

	now := time.Now()
	return models.Invoice{
		ID:    uuid.New().String(),
		Date:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Items: copied,
		Total: total,
	}
}

// CreateDummyInvoice builds an invoice over a fixed two-item sample.
func CreateDummyInvoice() models.Invoice {
	return CreateInvoice([]models.InvoiceItem{
		{Product: "Sample Product A", Quantity: 2, Price: 15.0},
		{Product: "Sample Product B", Quantity: 1, Price: 30.0},
	})
}
