package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// InvoiceRepository encapsulates invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, draft domain.InvoiceDraft) (*domain.Invoice, error)
	Update(ctx context.Context, id string, draft domain.InvoiceDraft) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	List(ctx context.Context) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository instantiates repository.
func NewInvoiceRepository(pool *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepository{pool: pool}
}

const invoiceColumns = `id, customer_id, ticket_id, subtotal, tax, discount, total, payment_status, created_at, updated_at`

func (r *invoiceRepository) Create(ctx context.Context, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	const query = `
        INSERT INTO invoices (customer_id, ticket_id, subtotal, tax, discount, total, payment_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING ` + invoiceColumns
	row := r.pool.QueryRow(ctx, query,
		draft.CustomerID,
		draft.TicketID,
		draft.Subtotal,
		draft.Tax,
		draft.Discount,
		draft.Amount(),
		draft.PaymentStatus,
	)
	return scanInvoice(row)
}

func (r *invoiceRepository) Update(ctx context.Context, id string, draft domain.InvoiceDraft) (*domain.Invoice, error) {
	const query = `
        UPDATE invoices SET customer_id=$1, ticket_id=$2, subtotal=$3, tax=$4, discount=$5, total=$6,
            payment_status=$7, updated_at=NOW()
        WHERE id=$8
        RETURNING ` + invoiceColumns
	row := r.pool.QueryRow(ctx, query,
		draft.CustomerID,
		draft.TicketID,
		draft.Subtotal,
		draft.Tax,
		draft.Discount,
		draft.Amount(),
		draft.PaymentStatus,
		id,
	)
	return scanInvoice(row)
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	return err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
	return scanInvoice(row)
}

func (r *invoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *invoice)
	}
	return result, rows.Err()
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := row.Scan(
		&invoice.ID,
		&invoice.CustomerID,
		&invoice.TicketID,
		&invoice.Subtotal,
		&invoice.Tax,
		&invoice.Discount,
		&invoice.Total,
		&invoice.PaymentStatus,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &invoice, nil
}
