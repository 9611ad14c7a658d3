package prescription

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePrescription(ctx context.Context, doctorID uuid.UUID, p *Prescription) error {
	if doctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if p.Diagnosis == "" {
		return fmt.Errorf("diagnosis is required")
	}
	if len(p.Medications) == 0 {
		return fmt.Errorf("at least one medication is required")
	}
	for i, med := range p.Medications {
		if err := validateMedication(med); err != nil {
			return fmt.Errorf("medication %d: %w", i+1, err)
		}
	}

	// Ownership comes from the authenticated caller, never the payload.
	p.DoctorID = doctorID
	return s.repo.Create(ctx, p)
}

func validateMedication(m Medication) error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidMedication)
	}
	if !m.Formulation.Valid() {
		return fmt.Errorf("%w: unknown formulation %q", ErrInvalidMedication, m.Formulation)
	}
	if !m.Route.Valid() {
		return fmt.Errorf("%w: unknown route %q", ErrInvalidMedication, m.Route)
	}
	if m.FoodInstruction != "" && !m.FoodInstruction.Valid() {
		return fmt.Errorf("%w: unknown food instruction %q", ErrInvalidMedication, m.FoodInstruction)
	}
	return nil
}

// GetOwned returns the prescription only when it belongs to doctorID. A
// mismatch is reported as ErrNotFound so callers cannot probe for existence.
func (s *Service) GetOwned(ctx context.Context, id, doctorID uuid.UUID) (*Prescription, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if p.DoctorID != doctorID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) DeleteOwned(ctx context.Context, id, doctorID uuid.UUID) error {
	if _, err := s.GetOwned(ctx, id, doctorID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
