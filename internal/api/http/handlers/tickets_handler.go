package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairdeck/repairshop-service/internal/api/dto"
	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/service"
	"github.com/repairdeck/repairshop-service/internal/validation"
	apperrors "github.com/repairdeck/repairshop-service/pkg/util"
)

// TicketsHandler manages repair ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), ticketForm(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// ListTickets GET /tickets?search=.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.UserContext(), c.Query("search"))
	if err != nil {
		return err
	}
	items := make([]dto.TicketViewResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketViewResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	view := ticketViewResponse(ticket)
	return c.JSON(fiber.Map{"data": view})
}

// UpdateTicket PUT /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateTicket(c.UserContext(), c.Params("id"), ticketForm(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	if err := h.service.DeleteTicket(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ticketForm(req dto.TicketRequest) validation.TicketForm {
	return validation.TicketForm{
		CustomerID:       req.CustomerID,
		DeviceType:       req.DeviceType,
		DeviceModel:      req.DeviceModel,
		SerialNumber:     req.SerialNumber,
		IssueDescription: req.IssueDescription,
		Diagnosis:        req.Diagnosis,
		Solution:         req.Solution,
		Status:           req.Status,
		TechnicianID:     req.TechnicianID,
		EstimatedCost:    req.EstimatedCost,
		FinalCost:        req.FinalCost,
	}
}

func ticketResponse(ticket *domain.RepairTicket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:               ticket.ID,
		CustomerID:       ticket.CustomerID,
		DeviceType:       ticket.DeviceType,
		DeviceModel:      ticket.DeviceModel,
		SerialNumber:     ticket.SerialNumber,
		IssueDescription: ticket.IssueDescription,
		Diagnosis:        ticket.Diagnosis,
		Solution:         ticket.Solution,
		Status:           ticket.Status,
		StatusClass:      ticket.Status.Class(),
		TechnicianID:     ticket.TechnicianID,
		EstimatedCost:    ticket.EstimatedCost,
		FinalCost:        ticket.FinalCost,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
	}
}

func ticketViewResponse(ticket *domain.TicketWithCustomer) dto.TicketViewResponse {
	return dto.TicketViewResponse{
		TicketResponse:    ticketResponse(&ticket.RepairTicket),
		CustomerFirstName: ticket.Customer.FirstName,
		CustomerLastName:  ticket.Customer.LastName,
		CustomerPhone:     ticket.Customer.Phone,
	}
}
