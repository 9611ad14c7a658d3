package ehr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medscribe/medscribe/internal/domain/prescription"
	"github.com/medscribe/medscribe/internal/platform/fhir"
)

// PrescriptionGetter resolves a prescription owned by the given doctor.
type PrescriptionGetter interface {
	GetOwned(ctx context.Context, id, doctorID uuid.UUID) (*prescription.Prescription, error)
}

// DoctorDirectory resolves the practitioner fields rendered into FHIR for
// a doctor id.
type DoctorDirectory interface {
	PractitionerInfo(ctx context.Context, doctorID uuid.UUID) (PractitionerInfo, error)
}

// Service orchestrates the EHR integration workflow: configuration
// management, connection probes, and the build-submit-record pipeline.
type Service struct {
	repo          Repository
	client        *Client
	builder       *BundleBuilder
	prescriptions PrescriptionGetter
	doctors       DoctorDirectory
	logger        zerolog.Logger
}

func NewService(
	repo Repository,
	client *Client,
	builder *BundleBuilder,
	prescriptions PrescriptionGetter,
	doctors DoctorDirectory,
	logger zerolog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		client:        client,
		builder:       builder,
		prescriptions: prescriptions,
		doctors:       doctors,
		logger:        logger,
	}
}

// SaveConfiguration upserts the doctor's configuration for a provider.
// DoctorID is always taken from the authenticated caller.
func (s *Service) SaveConfiguration(ctx context.Context, doctorID uuid.UUID, cfg *Configuration) error {
	if !cfg.Provider.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidProvider, cfg.Provider)
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30
	}

	cfg.DoctorID = doctorID
	if err := s.repo.SaveConfiguration(ctx, cfg); err != nil {
		return err
	}

	s.logger.Info().
		Str("doctor_id", doctorID.String()).
		Str("provider", string(cfg.Provider)).
		Msg("ehr configuration saved")
	return nil
}

func (s *Service) ListConfigurations(ctx context.Context, doctorID uuid.UUID) ([]*Configuration, error) {
	return s.repo.ListConfigurations(ctx, doctorID)
}

func (s *Service) GetConfigurationByProvider(ctx context.Context, doctorID uuid.UUID, provider Provider) (*Configuration, error) {
	cfg, err := s.repo.GetConfigurationByProvider(ctx, doctorID, provider)
	if err != nil {
		return nil, ErrConfigurationMissing
	}
	return cfg, nil
}

func (s *Service) DeleteConfiguration(ctx context.Context, doctorID, configID uuid.UUID) error {
	deleted, err := s.repo.DeactivateConfiguration(ctx, doctorID, configID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// TestConnection probes the given endpoint and appends the outcome to the
// doctor's test history. The probe itself cannot fail; only persistence
// errors are returned.
func (s *Service) TestConnection(ctx context.Context, doctorID uuid.UUID, cfg *Configuration) (*ConnectionTest, error) {
	if !cfg.Provider.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvider, cfg.Provider)
	}
	cfg.DoctorID = doctorID
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30
	}

	test := s.client.TestConnection(ctx, cfg)
	test.DoctorID = doctorID

	if err := s.repo.SaveConnectionTest(ctx, test); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("doctor_id", doctorID.String()).
		Str("provider", string(cfg.Provider)).
		Str("status", string(test.Status)).
		Msg("ehr connection tested")
	return test, nil
}

func (s *Service) ConnectionTestHistory(ctx context.Context, doctorID uuid.UUID, provider Provider, limit int) ([]*ConnectionTest, error) {
	if !provider.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvider, provider)
	}
	return s.repo.ListConnectionTests(ctx, doctorID, provider, limit)
}

// SubmitPrescription runs the full pipeline: resolve prescription and
// configuration, open a pending ledger row, build the bundle, POST it, and
// record the outcome. The ledger row is created before the network call so
// a record exists even if the process dies mid-flight, and it is updated
// regardless of outcome. A remote failure is returned as result data, not
// as an error.
func (s *Service) SubmitPrescription(ctx context.Context, doctorID, prescriptionID uuid.UUID, provider Provider) (*Submission, *SubmissionResult, error) {
	if !provider.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidProvider, provider)
	}

	pres, err := s.prescriptions.GetOwned(ctx, prescriptionID, doctorID)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	cfg, err := s.repo.GetConfigurationByProvider(ctx, doctorID, provider)
	if err != nil {
		return nil, nil, ErrConfigurationMissing
	}

	docInfo, err := s.doctors.PractitionerInfo(ctx, doctorID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve practitioner: %w", err)
	}

	metadata, _ := json.Marshal(map[string]string{"submitted_by": doctorID.String()})
	sub := &Submission{
		DoctorID:       doctorID,
		PrescriptionID: prescriptionID,
		Provider:       provider,
		Metadata:       metadata,
	}
	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, nil, err
	}

	result := s.submit(ctx, pres, docInfo, cfg)

	if result.Success {
		if err := s.repo.UpdateSubmissionStatus(ctx, sub.ID, SubmissionSuccess, result.Response, ""); err != nil {
			s.logger.Error().Err(err).Str("submission_id", sub.ID.String()).Msg("record submission success")
		}
		bundleJSON, _ := json.Marshal(result.SubmittedBundle)
		if err := s.repo.SetSubmissionResult(ctx, sub.ID, result.PatientFHIRID, result.EncounterFHIRID, bundleJSON); err != nil {
			s.logger.Error().Err(err).Str("submission_id", sub.ID.String()).Msg("record submission result")
		}
	} else {
		errMsg := result.Error
		if errMsg == "" {
			errMsg = "unknown error"
		}
		if err := s.repo.UpdateSubmissionStatus(ctx, sub.ID, SubmissionFailed, nil, errMsg); err != nil {
			s.logger.Error().Err(err).Str("submission_id", sub.ID.String()).Msg("record submission failure")
		}
	}

	s.logger.Info().
		Str("submission_id", sub.ID.String()).
		Str("prescription_id", prescriptionID.String()).
		Str("provider", string(provider)).
		Bool("success", result.Success).
		Int("status_code", result.StatusCode).
		Msg("prescription submitted to ehr")

	updated, err := s.repo.GetSubmission(ctx, sub.ID)
	if err != nil {
		return sub, result, nil
	}
	return updated, result, nil
}

// submit builds the FHIR resources and performs the POST. Fresh resource
// ids are generated per attempt; they are this system's identifiers, not
// the remote EHR's.
func (s *Service) submit(ctx context.Context, pres *prescription.Prescription, docInfo PractitionerInfo, cfg *Configuration) *SubmissionResult {
	patientID := s.builder.NewID()
	practitionerID := s.builder.NewID()
	encounterID := s.builder.NewID()

	patientRef := fhir.FormatReference("Patient", patientID)
	practitionerRef := fhir.FormatReference("Practitioner", practitionerID)
	encounterRef := fhir.FormatReference("Encounter", encounterID)

	resources := []fhir.ResourceTyped{
		s.builder.Patient(pres.PatientInfo, patientID),
		s.builder.Practitioner(docInfo, practitionerID),
		s.builder.Encounter(patientRef, practitionerRef, encounterID, pres.Diagnosis),
	}
	for _, med := range pres.Medications {
		resources = append(resources, s.builder.MedicationRequest(med, patientRef, practitionerRef, s.builder.NewID()))
	}
	for _, obs := range s.builder.VitalObservations(pres.PatientInfo, patientRef, encounterRef) {
		resources = append(resources, obs)
	}

	bundle := s.builder.Bundle(resources, s.builder.NewID())

	result := s.client.Submit(ctx, cfg, bundle)
	if result.Success {
		result.PatientFHIRID = patientID
		result.PractitionerFHIRID = practitionerID
		result.EncounterFHIRID = encounterID
	}
	return result
}

func (s *Service) ListSubmissions(ctx context.Context, doctorID uuid.UUID, status SubmissionStatus, limit, offset int) ([]*Submission, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("unknown status %q", status)
	}
	return s.repo.ListSubmissions(ctx, doctorID, status, limit, offset)
}

// GetSubmission returns the submission only when it belongs to doctorID.
// Ownership mismatch is reported as ErrNotFound.
func (s *Service) GetSubmission(ctx context.Context, id, doctorID uuid.UUID) (*Submission, error) {
	sub, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if sub.DoctorID != doctorID {
		return nil, ErrNotFound
	}
	return sub, nil
}
