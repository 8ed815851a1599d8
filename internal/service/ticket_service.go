package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/events"
	"github.com/repairdeck/repairshop-service/internal/repository"
	"github.com/repairdeck/repairshop-service/internal/validation"
)

// TicketService coordinates repair ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// CreateTicket validates the form and inserts a new ticket. The persisted
// status is always pending regardless of the submitted value.
func (s *TicketService) CreateTicket(ctx context.Context, form validation.TicketForm) (*domain.RepairTicket, error) {
	draft, errs := form.ValidateCreate()
	if errs.HasErrors() {
		return nil, errs.AsDomainError()
	}
	ticket, err := s.tickets.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:    ticket.ID,
			CustomerID:  ticket.CustomerID,
			DeviceType:  ticket.DeviceType,
			DeviceModel: ticket.DeviceModel,
		},
	})
	return ticket, nil
}

// UpdateTicket validates the form and applies a full-field update. There is
// no transition graph: any status may replace any other.
func (s *TicketService) UpdateTicket(ctx context.Context, id string, form validation.TicketForm) (*domain.RepairTicket, error) {
	draft, errs := form.ValidateUpdate()
	if errs.HasErrors() {
		return nil, errs.AsDomainError()
	}
	current, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ticket, err := s.tickets.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if current.Status != ticket.Status {
		s.publishEvent(ctx, events.Event{
			Type: events.EventTicketStatusChanged,
			Payload: events.TicketStatusChangedPayload{
				TicketID:  ticket.ID,
				OldStatus: current.Status,
				NewStatus: ticket.Status,
			},
		})
	}
	return ticket, nil
}

// DeleteTicket removes a ticket. Deleting an id that no longer exists is
// treated as success.
func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventTicketDeleted,
		Payload: events.TicketDeletedPayload{TicketID: id},
	})
	return nil
}

// GetTicket fetches one ticket joined with its customer.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.TicketWithCustomer, error) {
	return s.tickets.GetByID(ctx, id)
}

// ListTickets returns the full working set, most recent first, then applies
// the free-text search over customer name, device model and issue description.
// Filtering is deliberately client-side over the full result set.
func (s *TicketService) ListTickets(ctx context.Context, search string) ([]domain.TicketWithCustomer, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return tickets, nil
	}
	filtered := make([]domain.TicketWithCustomer, 0, len(tickets))
	for _, ticket := range tickets {
		if ticketMatches(ticket, term) {
			filtered = append(filtered, ticket)
		}
	}
	return filtered, nil
}

func ticketMatches(ticket domain.TicketWithCustomer, term string) bool {
	return strings.Contains(strings.ToLower(ticket.Customer.FirstName), term) ||
		strings.Contains(strings.ToLower(ticket.Customer.LastName), term) ||
		strings.Contains(strings.ToLower(ticket.DeviceModel), term) ||
		strings.Contains(strings.ToLower(ticket.IssueDescription), term)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
