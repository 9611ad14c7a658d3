package prescription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	prescriptions []*Prescription
}

func (m *mockRepo) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	stored := *p
	m.prescriptions = append(m.prescriptions, &stored)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	for _, p := range m.prescriptions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	var matched []*Prescription
	for i := len(m.prescriptions) - 1; i >= 0; i-- {
		if m.prescriptions[i].DoctorID == doctorID {
			matched = append(matched, m.prescriptions[i])
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range m.prescriptions {
		if p.ID == id {
			m.prescriptions = append(m.prescriptions[:i], m.prescriptions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func validPrescription() *Prescription {
	return &Prescription{
		PatientInfo: PatientInfo{Name: "Ravi Kumar", Age: "52"},
		Diagnosis:   "Hypertension",
		Medications: []Medication{{
			Name:        "Amlodipine",
			Dosage:      "5mg",
			Formulation: FormulationTablet,
			Route:       RouteOral,
			Frequency:   "once daily",
			Duration:    "30 days",
		}},
	}
}

func TestCreatePrescription(t *testing.T) {
	svc := NewService(&mockRepo{})
	doctorID := uuid.New()

	p := validPrescription()
	// DoctorID from the payload must be overridden by the caller identity.
	p.DoctorID = uuid.New()
	if err := svc.CreatePrescription(context.Background(), doctorID, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.DoctorID != doctorID {
		t.Errorf("doctor id = %v, want caller %v", p.DoctorID, doctorID)
	}
	if p.ID == uuid.Nil {
		t.Error("id not assigned")
	}
}

func TestCreatePrescription_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})
	doctorID := uuid.New()

	noDiagnosis := validPrescription()
	noDiagnosis.Diagnosis = ""
	if err := svc.CreatePrescription(context.Background(), doctorID, noDiagnosis); err == nil {
		t.Error("expected error for missing diagnosis")
	}

	noMeds := validPrescription()
	noMeds.Medications = nil
	if err := svc.CreatePrescription(context.Background(), doctorID, noMeds); err == nil {
		t.Error("expected error for empty medications")
	}

	badFormulation := validPrescription()
	badFormulation.Medications[0].Formulation = "Pill"
	if err := svc.CreatePrescription(context.Background(), doctorID, badFormulation); !errors.Is(err, ErrInvalidMedication) {
		t.Errorf("error = %v, want ErrInvalidMedication", err)
	}

	badRoute := validPrescription()
	badRoute.Medications[0].Route = "Transdermal"
	if err := svc.CreatePrescription(context.Background(), doctorID, badRoute); !errors.Is(err, ErrInvalidMedication) {
		t.Errorf("error = %v, want ErrInvalidMedication", err)
	}

	if err := svc.CreatePrescription(context.Background(), uuid.Nil, validPrescription()); err == nil {
		t.Error("expected error for missing doctor id")
	}
}

func TestGetOwned(t *testing.T) {
	svc := NewService(&mockRepo{})
	owner := uuid.New()

	p := validPrescription()
	if err := svc.CreatePrescription(context.Background(), owner, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetOwned(context.Background(), p.ID, owner)
	if err != nil {
		t.Fatalf("get owned: %v", err)
	}
	if got.ID != p.ID {
		t.Error("wrong prescription returned")
	}

	if _, err := svc.GetOwned(context.Background(), p.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign doctor error = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetOwned(context.Background(), uuid.New(), owner); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestDeleteOwned(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	owner := uuid.New()

	p := validPrescription()
	if err := svc.CreatePrescription(context.Background(), owner, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteOwned(context.Background(), p.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete error = %v, want ErrNotFound", err)
	}
	if len(repo.prescriptions) != 1 {
		t.Fatal("foreign delete removed the row")
	}

	if err := svc.DeleteOwned(context.Background(), p.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.prescriptions) != 0 {
		t.Error("row not removed")
	}
}

func TestListByDoctor(t *testing.T) {
	svc := NewService(&mockRepo{})
	doctorA := uuid.New()
	doctorB := uuid.New()

	for i := 0; i < 3; i++ {
		if err := svc.CreatePrescription(context.Background(), doctorA, validPrescription()); err != nil {
			t.Fatal(err)
		}
	}
	if err := svc.CreatePrescription(context.Background(), doctorB, validPrescription()); err != nil {
		t.Fatal(err)
	}

	subs, total, err := svc.ListByDoctor(context.Background(), doctorA, 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(subs) != 2 {
		t.Errorf("page size = %d, want 2", len(subs))
	}
	for _, p := range subs {
		if p.DoctorID != doctorA {
			t.Error("listed a foreign prescription")
		}
	}
}
