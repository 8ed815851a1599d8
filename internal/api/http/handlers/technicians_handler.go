package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairdeck/repairshop-service/internal/api/dto"
	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/service"
)

// TechniciansHandler exposes staff profiles for ticket assignment pickers.
type TechniciansHandler struct {
	service *service.TechnicianService
}

// NewTechniciansHandler constructs handler.
func NewTechniciansHandler(technicianService *service.TechnicianService) *TechniciansHandler {
	return &TechniciansHandler{service: technicianService}
}

// ListTechnicians GET /technicians.
func (h *TechniciansHandler) ListTechnicians(c *fiber.Ctx) error {
	technicians, err := h.service.ListTechnicians(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.TechnicianResponse, 0, len(technicians))
	for i := range technicians {
		items = append(items, technicianResponse(&technicians[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTechnician GET /technicians/:id.
func (h *TechniciansHandler) GetTechnician(c *fiber.Ctx) error {
	technician, err := h.service.GetTechnician(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": technicianResponse(technician)})
}

func technicianResponse(technician *domain.Technician) dto.TechnicianResponse {
	return dto.TechnicianResponse{
		ID:        technician.ID,
		FirstName: technician.FirstName,
		LastName:  technician.LastName,
		Email:     technician.Email,
		Phone:     technician.Phone,
		Role:      technician.Role,
		CreatedAt: technician.CreatedAt,
		UpdatedAt: technician.UpdatedAt,
	}
}
