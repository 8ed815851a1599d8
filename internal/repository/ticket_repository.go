package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// TicketRepository encapsulates repair ticket persistence. It is the only
// component that talks to the record store for ticket data.
type TicketRepository interface {
	Create(ctx context.Context, draft domain.TicketDraft) (*domain.RepairTicket, error)
	Update(ctx context.Context, id string, draft domain.TicketDraft) (*domain.RepairTicket, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TicketWithCustomer, error)
	List(ctx context.Context) ([]domain.TicketWithCustomer, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, customer_id, device_type, device_model, serial_number, issue_description,
               diagnosis, solution, status, technician_id, estimated_cost, final_cost, created_at, updated_at`

// Create inserts a new ticket. Status is forced to pending regardless of the
// draft; every ticket starts its lifecycle there.
func (r *ticketRepository) Create(ctx context.Context, draft domain.TicketDraft) (*domain.RepairTicket, error) {
	const query = `
        INSERT INTO repair_tickets (customer_id, device_type, device_model, serial_number, issue_description,
            diagnosis, solution, status, technician_id, estimated_cost, final_cost)
        VALUES ($1,$2,$3,$4,$5,$6,$7,'pending',$8,$9,$10)
        RETURNING ` + ticketColumns
	row := r.pool.QueryRow(ctx, query,
		draft.CustomerID,
		draft.DeviceType,
		draft.DeviceModel,
		draft.SerialNumber,
		draft.IssueDescription,
		draft.Diagnosis,
		draft.Solution,
		draft.TechnicianID,
		draft.EstimatedCost,
		draft.FinalCost,
	)
	return scanTicket(row)
}

// Update applies a full-field update. Reports pgx.ErrNoRows when no ticket
// matches the id.
func (r *ticketRepository) Update(ctx context.Context, id string, draft domain.TicketDraft) (*domain.RepairTicket, error) {
	const query = `
        UPDATE repair_tickets SET customer_id=$1, device_type=$2, device_model=$3, serial_number=$4,
            issue_description=$5, diagnosis=$6, solution=$7, status=$8, technician_id=$9,
            estimated_cost=$10, final_cost=$11, updated_at=NOW()
        WHERE id=$12
        RETURNING ` + ticketColumns
	row := r.pool.QueryRow(ctx, query,
		draft.CustomerID,
		draft.DeviceType,
		draft.DeviceModel,
		draft.SerialNumber,
		draft.IssueDescription,
		draft.Diagnosis,
		draft.Solution,
		draft.Status,
		draft.TechnicianID,
		draft.EstimatedCost,
		draft.FinalCost,
		id,
	)
	return scanTicket(row)
}

// Delete removes a ticket. Deleting an id that no longer exists is success;
// the caller cannot distinguish it from a delete that raced another session.
func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM repair_tickets WHERE id=$1`, id)
	return err
}

const ticketJoinQuery = `
        SELECT t.id, t.customer_id, t.device_type, t.device_model, t.serial_number, t.issue_description,
               t.diagnosis, t.solution, t.status, t.technician_id, t.estimated_cost, t.final_cost,
               t.created_at, t.updated_at, c.first_name, c.last_name, c.phone
        FROM repair_tickets t
        JOIN customers c ON c.id = t.customer_id`

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.TicketWithCustomer, error) {
	row := r.pool.QueryRow(ctx, ticketJoinQuery+` WHERE t.id=$1`, id)
	ticket, err := scanTicketWithCustomer(row)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns the full working set joined with each ticket's customer, most
// recent first. Free-text filtering happens in the service over this result.
func (r *ticketRepository) List(ctx context.Context) ([]domain.TicketWithCustomer, error) {
	rows, err := r.pool.Query(ctx, ticketJoinQuery+` ORDER BY t.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketWithCustomer
	for rows.Next() {
		ticket, err := scanTicketWithCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.RepairTicket, error) {
	var ticket domain.RepairTicket
	if err := row.Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.DeviceType,
		&ticket.DeviceModel,
		&ticket.SerialNumber,
		&ticket.IssueDescription,
		&ticket.Diagnosis,
		&ticket.Solution,
		&ticket.Status,
		&ticket.TechnicianID,
		&ticket.EstimatedCost,
		&ticket.FinalCost,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTicketWithCustomer(row pgx.Row) (*domain.TicketWithCustomer, error) {
	var ticket domain.TicketWithCustomer
	if err := row.Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.DeviceType,
		&ticket.DeviceModel,
		&ticket.SerialNumber,
		&ticket.IssueDescription,
		&ticket.Diagnosis,
		&ticket.Solution,
		&ticket.Status,
		&ticket.TechnicianID,
		&ticket.EstimatedCost,
		&ticket.FinalCost,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.Customer.FirstName,
		&ticket.Customer.LastName,
		&ticket.Customer.Phone,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
