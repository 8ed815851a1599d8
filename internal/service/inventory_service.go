package service

import (
	"context"
	"strings"

	apperrors "github.com/repairdeck/repairshop-service/pkg/util"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/repository"
)

// InventoryService coordinates stock item workflows.
type InventoryService struct {
	items repository.InventoryRepository
}

// NewInventoryService constructs the service.
func NewInventoryService(items repository.InventoryRepository) *InventoryService {
	return &InventoryService{items: items}
}

func (s *InventoryService) CreateItem(ctx context.Context, draft domain.InventoryDraft) (*domain.InventoryItem, error) {
	if err := validateInventoryDraft(draft); err != nil {
		return nil, err
	}
	return s.items.Create(ctx, draft)
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, draft domain.InventoryDraft) (*domain.InventoryItem, error) {
	if err := validateInventoryDraft(draft); err != nil {
		return nil, err
	}
	return s.items.Update(ctx, id, draft)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.List(ctx)
}

// ListLowStock returns the items at or below their reorder threshold.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]domain.InventoryItem, 0)
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func validateInventoryDraft(draft domain.InventoryDraft) error {
	details := map[string]any{}
	if strings.TrimSpace(draft.SKU) == "" {
		details["sku"] = "required"
	}
	if strings.TrimSpace(draft.Name) == "" {
		details["name"] = "required"
	}
	if draft.Quantity < 0 {
		details["quantity"] = "negative"
	}
	if draft.PurchasePrice < 0 {
		details["purchase_price"] = "negative"
	}
	if draft.SellingPrice < 0 {
		details["selling_price"] = "negative"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid input", details)
	}
	return nil
}
