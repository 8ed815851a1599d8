package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// TechnicianRepository reads staff profiles assignable to tickets.
type TechnicianRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Technician, error)
	List(ctx context.Context) ([]domain.Technician, error)
}

type technicianRepository struct {
	pool *pgxpool.Pool
}

// NewTechnicianRepository instantiates repository.
func NewTechnicianRepository(pool *pgxpool.Pool) TechnicianRepository {
	return &technicianRepository{pool: pool}
}

const technicianColumns = `id, first_name, last_name, email, phone, role, created_at, updated_at`

func (r *technicianRepository) GetByID(ctx context.Context, id string) (*domain.Technician, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+technicianColumns+` FROM technicians WHERE id=$1`, id)
	return scanTechnician(row)
}

func (r *technicianRepository) List(ctx context.Context) ([]domain.Technician, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+technicianColumns+` FROM technicians ORDER BY first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Technician
	for rows.Next() {
		technician, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *technician)
	}
	return result, rows.Err()
}

func scanTechnician(row pgx.Row) (*domain.Technician, error) {
	var technician domain.Technician
	if err := row.Scan(
		&technician.ID,
		&technician.FirstName,
		&technician.LastName,
		&technician.Email,
		&technician.Phone,
		&technician.Role,
		&technician.CreatedAt,
		&technician.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &technician, nil
}
