package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/repairdeck/repairshop-service/internal/domain"
)

// InventoryRepository encapsulates stock item persistence.
type InventoryRepository interface {
	Create(ctx context.Context, draft domain.InventoryDraft) (*domain.InventoryItem, error)
	Update(ctx context.Context, id string, draft domain.InventoryDraft) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
}

type inventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository instantiates repository.
func NewInventoryRepository(pool *pgxpool.Pool) InventoryRepository {
	return &inventoryRepository{pool: pool}
}

const inventoryColumns = `id, sku, name, description, quantity, min_quantity, purchase_price, selling_price,
               supplier_name, supplier_contact, created_at, updated_at`

func (r *inventoryRepository) Create(ctx context.Context, draft domain.InventoryDraft) (*domain.InventoryItem, error) {
	const query = `
        INSERT INTO inventory_items (sku, name, description, quantity, min_quantity, purchase_price,
            selling_price, supplier_name, supplier_contact)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING ` + inventoryColumns
	row := r.pool.QueryRow(ctx, query,
		draft.SKU,
		draft.Name,
		draft.Description,
		draft.Quantity,
		draft.MinQuantity,
		draft.PurchasePrice,
		draft.SellingPrice,
		draft.SupplierName,
		draft.SupplierContact,
	)
	return scanInventoryItem(row)
}

func (r *inventoryRepository) Update(ctx context.Context, id string, draft domain.InventoryDraft) (*domain.InventoryItem, error) {
	const query = `
        UPDATE inventory_items SET sku=$1, name=$2, description=$3, quantity=$4, min_quantity=$5,
            purchase_price=$6, selling_price=$7, supplier_name=$8, supplier_contact=$9, updated_at=NOW()
        WHERE id=$10
        RETURNING ` + inventoryColumns
	row := r.pool.QueryRow(ctx, query,
		draft.SKU,
		draft.Name,
		draft.Description,
		draft.Quantity,
		draft.MinQuantity,
		draft.PurchasePrice,
		draft.SellingPrice,
		draft.SupplierName,
		draft.SupplierContact,
		id,
	)
	return scanInventoryItem(row)
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE id=$1`, id)
	return err
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id=$1`, id)
	return scanInventoryItem(row)
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory_items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	if err := row.Scan(
		&item.ID,
		&item.SKU,
		&item.Name,
		&item.Description,
		&item.Quantity,
		&item.MinQuantity,
		&item.PurchasePrice,
		&item.SellingPrice,
		&item.SupplierName,
		&item.SupplierContact,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
