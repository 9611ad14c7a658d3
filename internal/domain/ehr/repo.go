package ehr

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists EHR configurations, connection test history and the
// submission ledger.
type Repository interface {
	// Configurations. SaveConfiguration upserts by (doctor_id, provider),
	// preserving created_at and reactivating the row on update.
	SaveConfiguration(ctx context.Context, cfg *Configuration) error
	ListConfigurations(ctx context.Context, doctorID uuid.UUID) ([]*Configuration, error)
	GetConfigurationByProvider(ctx context.Context, doctorID uuid.UUID, provider Provider) (*Configuration, error)
	DeactivateConfiguration(ctx context.Context, doctorID, configID uuid.UUID) (bool, error)

	// Connection tests. SaveConnectionTest appends and prunes the history
	// for (doctor_id, provider) down to the 10 most recent rows.
	SaveConnectionTest(ctx context.Context, test *ConnectionTest) error
	ListConnectionTests(ctx context.Context, doctorID uuid.UUID, provider Provider, limit int) ([]*ConnectionTest, error)

	// Submission ledger.
	CreateSubmission(ctx context.Context, sub *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListSubmissions(ctx context.Context, doctorID uuid.UUID, status SubmissionStatus, limit, offset int) ([]*Submission, int, error)
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status SubmissionStatus, ehrResponse []byte, errorMessage string) error
	SetSubmissionResult(ctx context.Context, id uuid.UUID, patientFHIRID, encounterFHIRID string, submissionData []byte) error
}
