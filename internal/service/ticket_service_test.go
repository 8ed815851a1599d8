package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/events"
	"github.com/repairdeck/repairshop-service/internal/validation"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

// memTicketRepo is an in-memory stand-in for the record store. It mimics the
// backend's observable behavior: foreign-key enforcement on insert, zero-rows
// on update of a missing id, permissive delete.
type memTicketRepo struct {
	mu        sync.Mutex
	customers map[string]domain.CustomerRef
	tickets   map[string]*domain.RepairTicket
	clock     time.Time
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{
		customers: make(map[string]domain.CustomerRef),
		tickets:   make(map[string]*domain.RepairTicket),
		clock:     time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *memTicketRepo) addCustomer(id, firstName, lastName, phone string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[id] = domain.CustomerRef{FirstName: firstName, LastName: lastName, Phone: phone}
}

func (r *memTicketRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *memTicketRepo) Create(ctx context.Context, draft domain.TicketDraft) (*domain.RepairTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[draft.CustomerID]; !ok {
		return nil, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	}
	now := r.tick()
	ticket := &domain.RepairTicket{
		ID:               uuid.NewString(),
		CustomerID:       draft.CustomerID,
		DeviceType:       draft.DeviceType,
		DeviceModel:      draft.DeviceModel,
		SerialNumber:     draft.SerialNumber,
		IssueDescription: draft.IssueDescription,
		Diagnosis:        draft.Diagnosis,
		Solution:         draft.Solution,
		Status:           domain.TicketStatusPending,
		TechnicianID:     draft.TechnicianID,
		EstimatedCost:    draft.EstimatedCost,
		FinalCost:        draft.FinalCost,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	r.tickets[ticket.ID] = ticket
	return copyTicket(ticket), nil
}

func (r *memTicketRepo) Update(ctx context.Context, id string, draft domain.TicketDraft) (*domain.RepairTicket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if _, ok := r.customers[draft.CustomerID]; !ok {
		return nil, &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
	}
	ticket.CustomerID = draft.CustomerID
	ticket.DeviceType = draft.DeviceType
	ticket.DeviceModel = draft.DeviceModel
	ticket.SerialNumber = draft.SerialNumber
	ticket.IssueDescription = draft.IssueDescription
	ticket.Diagnosis = draft.Diagnosis
	ticket.Solution = draft.Solution
	ticket.Status = draft.Status
	ticket.TechnicianID = draft.TechnicianID
	ticket.EstimatedCost = draft.EstimatedCost
	ticket.FinalCost = draft.FinalCost
	ticket.UpdatedAt = r.tick()
	return copyTicket(ticket), nil
}

func (r *memTicketRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, id)
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, id string) (*domain.TicketWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &domain.TicketWithCustomer{RepairTicket: *copyTicket(ticket), Customer: r.customers[ticket.CustomerID]}, nil
}

func (r *memTicketRepo) List(ctx context.Context) ([]domain.TicketWithCustomer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.TicketWithCustomer, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		result = append(result, domain.TicketWithCustomer{
			RepairTicket: *copyTicket(ticket),
			Customer:     r.customers[ticket.CustomerID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func copyTicket(ticket *domain.RepairTicket) *domain.RepairTicket {
	clone := *ticket
	return &clone
}

// eventRecorder captures dispatched event types.
type eventRecorder struct {
	dispatcher events.Dispatcher
	mu         sync.Mutex
	seen       []events.Event
}

func newEventRecorder() *eventRecorder {
	rec := &eventRecorder{dispatcher: events.NewInMemoryDispatcher()}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketDeleted,
	} {
		rec.dispatcher.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			rec.seen = append(rec.seen, event)
			return nil
		})
	}
	return rec
}

func (r *eventRecorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.EventType, 0, len(r.seen))
	for _, event := range r.seen {
		types = append(types, event.Type)
	}
	return types
}

func newTicketFixture(t *testing.T) (*TicketService, *memTicketRepo, *eventRecorder) {
	t.Helper()
	repo := newMemTicketRepo()
	rec := newEventRecorder()
	return NewTicketService(repo, rec.dispatcher), repo, rec
}

func createForm(customerID string) validation.TicketForm {
	return validation.TicketForm{
		CustomerID:       customerID,
		DeviceType:       "phone",
		DeviceModel:      "iPhone 12",
		IssueDescription: "cracked screen",
	}
}

func TestCreateTicketThenListIncludesRecord(t *testing.T) {
	svc, repo, _ := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")

	ticket, err := svc.CreateTicket(context.Background(), createForm("c1"))
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if ticket.Status != domain.TicketStatusPending {
		t.Fatalf("status = %q, want pending", ticket.Status)
	}
	if ticket.SerialNumber != nil || ticket.Diagnosis != nil || ticket.Solution != nil || ticket.EstimatedCost != nil {
		t.Fatal("optional fields should be nil on minimal create")
	}

	tickets, err := svc.ListTickets(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("got %d tickets, want 1", len(tickets))
	}
	got := tickets[0]
	if got.ID != ticket.ID || got.DeviceModel != "iPhone 12" || got.IssueDescription != "cracked screen" {
		t.Fatalf("listed ticket mismatch: %+v", got)
	}
	if got.Customer.FirstName != "John" || got.Customer.LastName != "Doe" || got.Customer.Phone != "555-0100" {
		t.Fatalf("joined customer mismatch: %+v", got.Customer)
	}
}

func TestListTicketsOrdersMostRecentFirst(t *testing.T) {
	svc, repo, _ := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")

	first, _ := svc.CreateTicket(context.Background(), createForm("c1"))
	second, _ := svc.CreateTicket(context.Background(), createForm("c1"))

	tickets, err := svc.ListTickets(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("got %d tickets, want 2", len(tickets))
	}
	if tickets[0].ID != second.ID || tickets[1].ID != first.ID {
		t.Fatal("tickets not ordered created_at descending")
	}
}

func TestUpdateTicketPatchesFields(t *testing.T) {
	svc, repo, rec := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")

	ticket, err := svc.CreateTicket(context.Background(), validation.TicketForm{
		CustomerID:       "c1",
		DeviceType:       "phone",
		DeviceModel:      "iPhone 12",
		IssueDescription: "cracked screen",
		EstimatedCost:    "50",
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	updated, err := svc.UpdateTicket(context.Background(), ticket.ID, validation.TicketForm{
		CustomerID:       "c1",
		DeviceType:       "phone",
		DeviceModel:      "iPhone 12",
		IssueDescription: "cracked screen",
		Status:           "completed",
		EstimatedCost:    "50",
		FinalCost:        "89.99",
	})
	if err != nil {
		t.Fatalf("UpdateTicket: %v", err)
	}
	if updated.Status != domain.TicketStatusCompleted {
		t.Fatalf("status = %q, want completed", updated.Status)
	}
	if updated.FinalCost == nil || *updated.FinalCost != 89.99 {
		t.Fatalf("final_cost = %v, want 89.99", updated.FinalCost)
	}
	if updated.EstimatedCost == nil || *updated.EstimatedCost != 50 {
		t.Fatalf("estimated_cost = %v, want unchanged 50", updated.EstimatedCost)
	}

	fetched, err := svc.GetTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("GetTicket: %v", err)
	}
	if fetched.Status != domain.TicketStatusCompleted {
		t.Fatalf("fetched status = %q, want completed", fetched.Status)
	}

	types := rec.types()
	if len(types) != 2 || types[1] != events.EventTicketStatusChanged {
		t.Fatalf("events = %v, want status change after create", types)
	}
}

func TestUpdateMissingTicketReportsNotFound(t *testing.T) {
	svc, repo, _ := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")

	form := createForm("c1")
	form.Status = "pending"
	_, err := svc.UpdateTicket(context.Background(), "missing", form)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := apperrors.ToDomainError(err).Code; code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}

func TestDeleteTicketIsIdempotent(t *testing.T) {
	svc, repo, rec := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")

	ticket, _ := svc.CreateTicket(context.Background(), createForm("c1"))

	if err := svc.DeleteTicket(context.Background(), ticket.ID); err != nil {
		t.Fatalf("DeleteTicket: %v", err)
	}
	// deleting an id that no longer exists is still success
	if err := svc.DeleteTicket(context.Background(), ticket.ID); err != nil {
		t.Fatalf("second DeleteTicket: %v", err)
	}

	tickets, err := svc.ListTickets(context.Background(), "")
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	for _, got := range tickets {
		if got.ID == ticket.ID {
			t.Fatal("deleted ticket still listed")
		}
	}

	types := rec.types()
	if len(types) != 3 || types[1] != events.EventTicketDeleted || types[2] != events.EventTicketDeleted {
		t.Fatalf("events = %v, want two delete events after create", types)
	}
}

func TestListTicketsSearchFilter(t *testing.T) {
	svc, repo, _ := newTicketFixture(t)
	repo.addCustomer("c1", "John", "Doe", "555-0100")
	repo.addCustomer("c2", "Jane", "Smith", "555-0101")

	doeTicket, _ := svc.CreateTicket(context.Background(), createForm("c1"))
	if _, err := svc.CreateTicket(context.Background(), validation.TicketForm{
		CustomerID:       "c2",
		DeviceType:       "laptop",
		DeviceModel:      "MacBook Air",
		IssueDescription: "battery drain",
	}); err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}

	cases := []struct {
		term string
		want []string
	}{
		{term: "doe", want: []string{doeTicket.ID}},
		{term: "DOE", want: []string{doeTicket.ID}},
		{term: "iphone", want: []string{doeTicket.ID}},
		{term: "cracked", want: []string{doeTicket.ID}},
		{term: "nothing-matches", want: nil},
	}

	for _, tt := range cases {
		tickets, err := svc.ListTickets(context.Background(), tt.term)
		if err != nil {
			t.Fatalf("ListTickets(%q): %v", tt.term, err)
		}
		if len(tickets) != len(tt.want) {
			t.Errorf("search %q: got %d tickets, want %d", tt.term, len(tickets), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if tickets[i].ID != id {
				t.Errorf("search %q: ticket[%d] = %s, want %s", tt.term, i, tickets[i].ID, id)
			}
		}
	}
}

func TestCreateTicketUnknownCustomerReportsPersistenceError(t *testing.T) {
	svc, _, rec := newTicketFixture(t)

	_, err := svc.CreateTicket(context.Background(), createForm("ghost"))
	if err == nil {
		t.Fatal("expected error")
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Fatalf("error %T, want pg error surfaced unwrapped", err)
	}
	if code := apperrors.ToDomainError(err).Code; code != "PERSISTENCE_FAILED" {
		t.Fatalf("code = %q, want PERSISTENCE_FAILED", code)
	}

	tickets, _ := svc.ListTickets(context.Background(), "")
	if len(tickets) != 0 {
		t.Fatal("no ticket row should exist after rejected insert")
	}
	if len(rec.types()) != 0 {
		t.Fatal("no event should be emitted for a rejected insert")
	}
}

func TestCreateTicketValidationFailureAggregatesFields(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	_, err := svc.CreateTicket(context.Background(), validation.TicketForm{DeviceType: "toaster", EstimatedCost: "abc"})
	if err == nil {
		t.Fatal("expected error")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", domainErr.Code)
	}
	for _, field := range []string{"customer_id", "device_type", "device_model", "issue_description", "estimated_cost"} {
		if _, ok := domainErr.Details[field]; !ok {
			t.Errorf("details missing field %q: %v", field, domainErr.Details)
		}
	}
}
