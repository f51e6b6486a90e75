package events

import (
	"sync"
	"testing"

	"invoiceBack/internal/models"
)

type countingObserver struct {
	mu    sync.Mutex
	calls []models.Invoice
}

func (o *countingObserver) InvoiceCreated(inv models.Invoice) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, inv)
}

func (o *countingObserver) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.calls)
}

func TestPublishReachesEveryObserverOnce(t *testing.T) {
	p := NewPublisher()
	observers := []*countingObserver{{}, {}, {}}
	for _, o := range observers {
		p.Register(o)
	}

	inv := models.Invoice{ID: "inv-1", Total: 42}
	p.PublishInvoiceCreated(inv)

	for i, o := range observers {
		if o.count() != 1 {
			t.Fatalf("observer %d: expected 1 call, got %d", i, o.count())
		}
		if o.calls[0].ID != "inv-1" {
			t.Fatalf("observer %d: got invoice %s", i, o.calls[0].ID)
		}
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	p := NewPublisher()
	kept, dropped := &countingObserver{}, &countingObserver{}
	p.Register(kept)
	p.Register(dropped)

	p.Unregister(dropped)
	p.PublishInvoiceCreated(models.Invoice{ID: "inv-2"})

	if kept.count() != 1 {
		t.Fatalf("expected remaining observer to be called once, got %d", kept.count())
	}
	if dropped.count() != 0 {
		t.Fatalf("unregistered observer was called %d times", dropped.count())
	}
}

func TestPublishWithoutObservers(t *testing.T) {
	p := NewPublisher()
	p.PublishInvoiceCreated(models.Invoice{ID: "inv-3"})
}

func TestUnregisterUnknownObserver(t *testing.T) {
	p := NewPublisher()
	p.Register(&countingObserver{})
	p.Unregister(&countingObserver{})
	p.PublishInvoiceCreated(models.Invoice{ID: "inv-4"})
}

func TestConcurrentRegisterDuringPublish(t *testing.T) {
	p := NewPublisher()
	for i := 0; i < 10; i++ {
		p.Register(&countingObserver{})
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p.PublishInvoiceCreated(models.Invoice{ID: "inv-5"})
		}()
		go func() {
			defer wg.Done()
			o := &countingObserver{}
			p.Register(o)
			p.Unregister(o)
		}()
	}
	wg.Wait()
}
