package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairdeck/repairshop-service/internal/api/dto"
	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/service"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

// InvoicesHandler manages billing endpoints.
type InvoicesHandler struct {
	service *service.InvoiceService
}

// NewInvoicesHandler constructs handler.
func NewInvoicesHandler(invoiceService *service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{service: invoiceService}
}

// CreateInvoice POST /invoices.
func (h *InvoicesHandler) CreateInvoice(c *fiber.Ctx) error {
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	invoice, err := h.service.CreateInvoice(c.UserContext(), invoiceDraft(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// ListInvoices GET /invoices.
func (h *InvoicesHandler) ListInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.ListInvoices(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, invoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetInvoice GET /invoices/:id.
func (h *InvoicesHandler) GetInvoice(c *fiber.Ctx) error {
	invoice, err := h.service.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// UpdateInvoice PUT /invoices/:id.
func (h *InvoicesHandler) UpdateInvoice(c *fiber.Ctx) error {
	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	invoice, err := h.service.UpdateInvoice(c.UserContext(), c.Params("id"), invoiceDraft(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": invoiceResponse(invoice)})
}

// DeleteInvoice DELETE /invoices/:id.
func (h *InvoicesHandler) DeleteInvoice(c *fiber.Ctx) error {
	if err := h.service.DeleteInvoice(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func invoiceDraft(req dto.InvoiceRequest) domain.InvoiceDraft {
	return domain.InvoiceDraft{
		CustomerID:    req.CustomerID,
		TicketID:      req.TicketID,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Discount:      req.Discount,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	}
}

func invoiceResponse(invoice *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            invoice.ID,
		CustomerID:    invoice.CustomerID,
		TicketID:      invoice.TicketID,
		Subtotal:      invoice.Subtotal,
		Tax:           invoice.Tax,
		Discount:      invoice.Discount,
		Total:         invoice.Total,
		PaymentStatus: invoice.PaymentStatus,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}
