package service

import (
	"context"

	"github.com/repairdeck/repairshop-service/internal/domain"
	"github.com/repairdeck/repairshop-service/internal/repository"
)

// TechnicianService exposes read access to staff profiles.
type TechnicianService struct {
	technicians repository.TechnicianRepository
}

// NewTechnicianService constructs the service.
func NewTechnicianService(technicians repository.TechnicianRepository) *TechnicianService {
	return &TechnicianService{technicians: technicians}
}

func (s *TechnicianService) GetTechnician(ctx context.Context, id string) (*domain.Technician, error) {
	return s.technicians.GetByID(ctx, id)
}

func (s *TechnicianService) ListTechnicians(ctx context.Context) ([]domain.Technician, error) {
	return s.technicians.List(ctx)
}
