package main

import (
	"log"

	"invoiceBack/internal/models"
)

// logObserver is the stand-in for the original GUI log panel: one info line
// per created invoice.
type logObserver struct {
	infoLog *log.Logger
}

func (o *logObserver) InvoiceCreated(inv models.Invoice) {
	o.infoLog.Printf("invoice created: %s total %.2f (%d items)", inv.ID, inv.Total, len(inv.Items))
}
