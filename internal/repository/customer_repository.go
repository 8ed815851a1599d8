package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// CustomerRepository encapsulates customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, draft domain.CustomerDraft) (*domain.Customer, error)
	Update(ctx context.Context, id string, draft domain.CustomerDraft) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository instantiates repository.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

const customerColumns = `id, first_name, last_name, phone, email, address, notes, created_at, updated_at`

func (r *customerRepository) Create(ctx context.Context, draft domain.CustomerDraft) (*domain.Customer, error) {
	const query = `
        INSERT INTO customers (first_name, last_name, phone, email, address, notes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING ` + customerColumns
	row := r.pool.QueryRow(ctx, query,
		draft.FirstName,
		draft.LastName,
		draft.Phone,
		draft.Email,
		draft.Address,
		draft.Notes,
	)
	return scanCustomer(row)
}

func (r *customerRepository) Update(ctx context.Context, id string, draft domain.CustomerDraft) (*domain.Customer, error) {
	const query = `
        UPDATE customers SET first_name=$1, last_name=$2, phone=$3, email=$4, address=$5, notes=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING ` + customerColumns
	row := r.pool.QueryRow(ctx, query,
		draft.FirstName,
		draft.LastName,
		draft.Phone,
		draft.Email,
		draft.Address,
		draft.Notes,
		id,
	)
	return scanCustomer(row)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
	return scanCustomer(row)
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *customer)
	}
	return result, rows.Err()
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&customer.Notes,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}
