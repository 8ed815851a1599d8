package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/events"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

type memInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*domain.Invoice
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
}

func (r *memInvoiceRepo) Create(ctx context.Context, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	invoice := &domain.Invoice{
		ID:            uuid.NewString(),
		CustomerID:    draft.CustomerID,
		TicketID:      draft.TicketID,
		Subtotal:      draft.Subtotal,
		Tax:           draft.Tax,
		Discount:      draft.Discount,
		Total:         draft.Amount(),
		PaymentStatus: draft.PaymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.invoices[invoice.ID] = invoice
	clone := *invoice
	return &clone, nil
}

func (r *memInvoiceRepo) Update(ctx context.Context, id string, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	invoice.CustomerID = draft.CustomerID
	invoice.TicketID = draft.TicketID
	invoice.Subtotal = draft.Subtotal
	invoice.Tax = draft.Tax
	invoice.Discount = draft.Discount
	invoice.Total = draft.Amount()
	invoice.PaymentStatus = draft.PaymentStatus
	invoice.UpdatedAt = time.Now()
	clone := *invoice
	return &clone, nil
}

func (r *memInvoiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	return nil
}

func (r *memInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *invoice
	return &clone, nil
}

func (r *memInvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Invoice, 0, len(r.invoices))
	for _, invoice := range r.invoices {
		result = append(result, *invoice)
	}
	return result, nil
}

func TestCreateInvoiceComputesTotalAndDefaultsStatus(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var created []events.Event
	dispatcher.Subscribe(events.EventInvoiceCreated, func(ctx context.Context, event events.Event) error {
		created = append(created, event)
		return nil
	})
	svc := NewInvoiceService(newMemInvoiceRepo(), dispatcher)

	discount := 10.0
	invoice, err := svc.CreateInvoice(context.Background(), domain.InvoiceDraft{
		CustomerID: "c1",
		Subtotal:   100,
		Tax:        8.5,
		Discount:   &discount,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if invoice.Total != 98.5 {
		t.Fatalf("total = %v, want 98.5", invoice.Total)
	}
	if invoice.PaymentStatus != domain.PaymentPending {
		t.Fatalf("payment_status = %q, want pending default", invoice.PaymentStatus)
	}
	if len(created) != 1 {
		t.Fatalf("got %d invoice_created events, want 1", len(created))
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc := NewInvoiceService(newMemInvoiceRepo(), nil)

	discount := -1.0
	_, err := svc.CreateInvoice(context.Background(), domain.InvoiceDraft{
		Subtotal:      -5,
		Discount:      &discount,
		PaymentStatus: "overdue",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", domainErr.Code)
	}
	for _, field := range []string{"customer_id", "subtotal", "discount", "payment_status"} {
		if _, ok := domainErr.Details[field]; !ok {
			t.Errorf("details missing %q: %v", field, domainErr.Details)
		}
	}
}

func TestUpdateInvoiceRecomputesTotal(t *testing.T) {
	svc := NewInvoiceService(newMemInvoiceRepo(), nil)
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, domain.InvoiceDraft{CustomerID: "c1", Subtotal: 50, Tax: 5})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	updated, err := svc.UpdateInvoice(ctx, invoice.ID, domain.InvoiceDraft{
		CustomerID:    "c1",
		Subtotal:      80,
		Tax:           8,
		PaymentStatus: domain.PaymentPaid,
	})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}
	if updated.Total != 88 {
		t.Fatalf("total = %v, want 88", updated.Total)
	}
	if updated.PaymentStatus != domain.PaymentPaid {
		t.Fatalf("payment_status = %q, want paid", updated.PaymentStatus)
	}
}
