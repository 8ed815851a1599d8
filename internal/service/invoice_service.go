package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/repairdeck/repairshop-service/pkg/util"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/events"
	"github.com/repairdeck/repairshop-service/internal/repository"
)

// InvoiceService coordinates billing workflows. Invoices are an independent
// aggregate: ticket logic never mutates them.
type InvoiceService struct {
	invoices   repository.InvoiceRepository
	dispatcher events.Dispatcher
}

// NewInvoiceService constructs the service.
func NewInvoiceService(invoices repository.InvoiceRepository, dispatcher events.Dispatcher) *InvoiceService {
	return &InvoiceService{invoices: invoices, dispatcher: dispatcher}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	if err := validateInvoiceDraft(&draft); err != nil {
		return nil, err
	}
	invoice, err := s.invoices.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInvoiceCreated,
			Timestamp: time.Now(),
			Payload: events.InvoiceCreatedPayload{
				InvoiceID:  invoice.ID,
				CustomerID: invoice.CustomerID,
				TicketID:   invoice.TicketID,
				Total:      invoice.Total,
				Status:     invoice.PaymentStatus,
			},
		})
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	if err := validateInvoiceDraft(&draft); err != nil {
		return nil, err
	}
	return s.invoices.Update(ctx, id, draft)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.invoices.List(ctx)
}

// validateInvoiceDraft checks amounts and defaults the payment status.
func validateInvoiceDraft(draft *domain.InvoiceDraft) error {
	details := map[string]any{}
	if draft.CustomerID == "" {
		details["customer_id"] = "required"
	}
	if draft.Subtotal < 0 {
		details["subtotal"] = "negative"
	}
	if draft.Tax < 0 {
		details["tax"] = "negative"
	}
	if draft.Discount != nil && *draft.Discount < 0 {
		details["discount"] = "negative"
	}
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = domain.PaymentPending
	} else if !draft.PaymentStatus.Valid() {
		details["payment_status"] = "invalid_enum"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid input", details)
	}
	return nil
}
