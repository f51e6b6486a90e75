package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"invoiceBack/internal/factory"
	"invoiceBack/internal/models"
	"invoiceBack/internal/services"
)

// InvoiceController translates presentation actions into service calls.
// Input validation stops here: an action with invalid input is never
// forwarded to the service.
type InvoiceController struct {
	Service *services.InvoiceService
	InfoLog *log.Logger
}

// GenerateInvoice builds and schedules the fixed demo invoice.
func (c *InvoiceController) GenerateInvoice(ctx context.Context) (models.Invoice, <-chan error) {
	inv := factory.CreateDummyInvoice()
	if c.InfoLog != nil {
		c.InfoLog.Printf("generating demo invoice %s", inv.ID)
	}
	return inv, c.Service.CreateInvoice(ctx, inv)
}

// GenerateRealInvoice validates the items, builds an invoice from them and
// schedules its creation. Validation failure returns the typed error and
// nothing is scheduled.
func (c *InvoiceController) GenerateRealInvoice(ctx context.Context, items []models.InvoiceItem) (models.Invoice, <-chan error, error) {
	if len(items) == 0 {
		return models.Invoice{}, nil, models.ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return models.Invoice{}, nil, err
		}
	}
	inv := factory.CreateInvoice(items)
	if c.InfoLog != nil {
		c.InfoLog.Printf("generating invoice %s with %d items", inv.ID, len(inv.Items))
	}
	return inv, c.Service.CreateInvoice(ctx, inv), nil
}

func (c *InvoiceController) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return c.Service.GetAllInvoices(ctx)
}

// ParseItems parses comma-separated "product:quantity:price" specs, e.g.
// "Pen:10:1.50,Notebook:5:3.75".
func ParseItems(specs string) ([]models.InvoiceItem, error) {
	specs = strings.TrimSpace(specs)
	if specs == "" {
		return nil, models.ErrNoItems
	}
	var items []models.InvoiceItem
	for _, spec := range strings.Split(specs, ",") {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid item spec %q, want product:quantity:price", spec)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", spec, models.ErrInvalidQuantity)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", spec, models.ErrInvalidPrice)
		}
		items = append(items, models.InvoiceItem{
			Product:  strings.TrimSpace(parts[0]),
			Quantity: quantity,
			Price:    price,
		})
	}
	return items, nil
}
