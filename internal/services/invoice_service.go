package services

import (
	"context"
	"log"
	"time"

	"invoiceBack/internal/events"
	"invoiceBack/internal/models"
	"invoiceBack/internal/repositories"
)

type InvoiceService struct {
	InvoiceRepo *repositories.InvoiceRepository
	Publisher   *events.Publisher
	CreateDelay time.Duration
	ErrorLog    *log.Logger
}

// CreateInvoice schedules persistence in the background and returns
// immediately. The 1-buffered channel reports the save error, or nil once
// the invoice is stored and observers have been notified. A scheduled task
// always runs to completion; cancelling ctx after submission has no effect.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice models.Invoice) <-chan error {
	done := make(chan error, 1)
	taskCtx := context.WithoutCancel(ctx)
	go func() {
		if s.CreateDelay > 0 {
			time.Sleep(s.CreateDelay) // simulated heavy processing
		}
		if err := s.InvoiceRepo.SaveInvoice(taskCtx, invoice); err != nil {
			if s.ErrorLog != nil {
				s.ErrorLog.Printf("create invoice %s: %v", invoice.ID, err)
			}
			done <- err
			return
		}
		s.Publisher.PublishInvoiceCreated(invoice)
		done <- nil
	}()
	return done
}

func (s *InvoiceService) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.InvoiceRepo.GetAllInvoices(ctx)
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	return s.InvoiceRepo.GetInvoiceByID(ctx, id)
}
