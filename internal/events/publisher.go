package events

import (
	"sync"

	"invoiceBack/internal/models"
)

// Observer receives a notification for every invoice that reaches storage.
type Observer interface {
	InvoiceCreated(invoice models.Invoice)
}

// Publisher keeps a registration-ordered observer registry. Publishing
// iterates over a snapshot, so observers may be registered or unregistered
// while a delivery is in progress.
type Publisher struct {
	mu        sync.Mutex
	observers []Observer
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Register(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, o)
}

// Unregister removes the first registered occurrence of o, if any.
func (p *Publisher) Unregister(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, registered := range p.observers {
		if registered == o {
			p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
			return
		}
	}
}

// PublishInvoiceCreated delivers the invoice to every currently registered
// observer, in registration order. No observers means no-op.
func (p *Publisher) PublishInvoiceCreated(invoice models.Invoice) {
	p.mu.Lock()
	snapshot := make([]Observer, len(p.observers))
	copy(snapshot, p.observers)
	p.mu.Unlock()

	for _, o := range snapshot {
		o.InvoiceCreated(invoice)
	}
}
