package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairdeck/repairshop-service/internal/api/dto"
	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/service"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

// InventoryHandler manages stock item endpoints.
type InventoryHandler struct {
	service *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: inventoryService}
}

// CreateItem POST /inventory.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.CreateItem(c.UserContext(), inventoryDraft(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": inventoryResponse(item)})
}

// ListItems GET /inventory. The low_stock query flag narrows to items at or
// below their reorder threshold.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var (
		items []domain.InventoryItem
		err   error
	)
	if c.QueryBool("low_stock") {
		items, err = h.service.ListLowStock(c.UserContext())
	} else {
		items, err = h.service.ListItems(c.UserContext())
	}
	if err != nil {
		return err
	}
	responses := make([]dto.InventoryItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, inventoryResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// GetItem GET /inventory/:id.
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inventoryResponse(item)})
}

// UpdateItem PUT /inventory/:id.
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.InventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.service.UpdateItem(c.UserContext(), c.Params("id"), inventoryDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": inventoryResponse(item)})
}

// DeleteItem DELETE /inventory/:id.
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func inventoryDraft(req dto.InventoryItemRequest) domain.InventoryDraft {
	return domain.InventoryDraft{
		SKU:             req.SKU,
		Name:            req.Name,
		Description:     req.Description,
		Quantity:        req.Quantity,
		MinQuantity:     req.MinQuantity,
		PurchasePrice:   req.PurchasePrice,
		SellingPrice:    req.SellingPrice,
		SupplierName:    req.SupplierName,
		SupplierContact: req.SupplierContact,
	}
}

func inventoryResponse(item *domain.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:              item.ID,
		SKU:             item.SKU,
		Name:            item.Name,
		Description:     item.Description,
		Quantity:        item.Quantity,
		MinQuantity:     item.MinQuantity,
		PurchasePrice:   item.PurchasePrice,
		SellingPrice:    item.SellingPrice,
		SupplierName:    item.SupplierName,
		SupplierContact: item.SupplierContact,
		LowStock:        item.LowStock(),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
