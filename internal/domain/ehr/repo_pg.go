package ehr

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const configCols = `id, doctor_id, provider, base_url, client_id, client_secret,
	auth_url, token_url, scope, api_key, organization, facility_id,
	timeout, verify_ssl, is_active, created_at, updated_at`

func (r *repoPG) SaveConfiguration(ctx context.Context, cfg *Configuration) error {
	cfg.ID = uuid.New()
	cfg.IsActive = true
	return r.pool.QueryRow(ctx, `
		INSERT INTO ehr_configuration (
			id, doctor_id, provider, base_url, client_id, client_secret,
			auth_url, token_url, scope, api_key, organization, facility_id,
			timeout, verify_ssl, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,TRUE)
		ON CONFLICT (doctor_id, provider) DO UPDATE SET
			base_url = EXCLUDED.base_url,
			client_id = EXCLUDED.client_id,
			client_secret = EXCLUDED.client_secret,
			auth_url = EXCLUDED.auth_url,
			token_url = EXCLUDED.token_url,
			scope = EXCLUDED.scope,
			api_key = EXCLUDED.api_key,
			organization = EXCLUDED.organization,
			facility_id = EXCLUDED.facility_id,
			timeout = EXCLUDED.timeout,
			verify_ssl = EXCLUDED.verify_ssl,
			is_active = TRUE,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		cfg.ID, cfg.DoctorID, cfg.Provider, cfg.BaseURL, cfg.ClientID, cfg.ClientSecret,
		cfg.AuthURL, cfg.TokenURL, cfg.Scope, cfg.APIKey, cfg.Organization, cfg.FacilityID,
		cfg.Timeout, cfg.VerifySSL,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
}

func (r *repoPG) ListConfigurations(ctx context.Context, doctorID uuid.UUID) ([]*Configuration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+configCols+` FROM ehr_configuration
		 WHERE doctor_id = $1 AND is_active ORDER BY created_at DESC`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*Configuration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (r *repoPG) GetConfigurationByProvider(ctx context.Context, doctorID uuid.UUID, provider Provider) (*Configuration, error) {
	return scanConfiguration(r.pool.QueryRow(ctx,
		`SELECT `+configCols+` FROM ehr_configuration
		 WHERE doctor_id = $1 AND provider = $2 AND is_active`, doctorID, provider))
}

func (r *repoPG) DeactivateConfiguration(ctx context.Context, doctorID, configID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ehr_configuration SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND doctor_id = $2 AND is_active`,
		configID, doctorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanConfiguration(row pgx.Row) (*Configuration, error) {
	var cfg Configuration
	err := row.Scan(
		&cfg.ID, &cfg.DoctorID, &cfg.Provider, &cfg.BaseURL, &cfg.ClientID, &cfg.ClientSecret,
		&cfg.AuthURL, &cfg.TokenURL, &cfg.Scope, &cfg.APIKey, &cfg.Organization, &cfg.FacilityID,
		&cfg.Timeout, &cfg.VerifySSL, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

const testCols = `id, doctor_id, provider, status, message, response_time,
	last_tested, capabilities, fhir_version, created_at`

func (r *repoPG) SaveConnectionTest(ctx context.Context, test *ConnectionTest) error {
	test.ID = uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO ehr_connection_test (
			id, doctor_id, provider, status, message, response_time,
			last_tested, capabilities, fhir_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at`,
		test.ID, test.DoctorID, test.Provider, test.Status, test.Message,
		test.ResponseTime, test.LastTested, test.Capabilities, test.FHIRVersion,
	).Scan(&test.CreatedAt)
	if err != nil {
		return err
	}

	// Keep only the 10 most recent results per (doctor, provider).
	_, err = tx.Exec(ctx, `
		DELETE FROM ehr_connection_test
		WHERE doctor_id = $1 AND provider = $2 AND id NOT IN (
			SELECT id FROM ehr_connection_test
			WHERE doctor_id = $1 AND provider = $2
			ORDER BY created_at DESC LIMIT 10
		)`, test.DoctorID, test.Provider)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *repoPG) ListConnectionTests(ctx context.Context, doctorID uuid.UUID, provider Provider, limit int) ([]*ConnectionTest, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+testCols+` FROM ehr_connection_test
		 WHERE doctor_id = $1 AND provider = $2
		 ORDER BY created_at DESC LIMIT $3`, doctorID, provider, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*ConnectionTest
	for rows.Next() {
		var t ConnectionTest
		if err := rows.Scan(
			&t.ID, &t.DoctorID, &t.Provider, &t.Status, &t.Message, &t.ResponseTime,
			&t.LastTested, &t.Capabilities, &t.FHIRVersion, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		tests = append(tests, &t)
	}
	return tests, rows.Err()
}

const submissionCols = `id, doctor_id, prescription_id, ehr_provider, status,
	patient_fhir_id, encounter_fhir_id, submission_data, metadata,
	ehr_response, error_message, retry_count, submitted_at, completed_at, updated_at`

func (r *repoPG) CreateSubmission(ctx context.Context, sub *Submission) error {
	sub.ID = uuid.New()
	sub.Status = SubmissionPending
	sub.RetryCount = 0
	return r.pool.QueryRow(ctx, `
		INSERT INTO ehr_submission (
			id, doctor_id, prescription_id, ehr_provider, status, metadata
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING submitted_at, updated_at`,
		sub.ID, sub.DoctorID, sub.PrescriptionID, sub.Provider, sub.Status, sub.Metadata,
	).Scan(&sub.SubmittedAt, &sub.UpdatedAt)
}

func (r *repoPG) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return scanSubmission(r.pool.QueryRow(ctx,
		`SELECT `+submissionCols+` FROM ehr_submission WHERE id = $1`, id))
}

func (r *repoPG) ListSubmissions(ctx context.Context, doctorID uuid.UUID, status SubmissionStatus, limit, offset int) ([]*Submission, int, error) {
	where := `WHERE doctor_id = $1`
	args := []interface{}{doctorID}
	if status != "" {
		where += ` AND status = $2`
		args = append(args, status)
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ehr_submission `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + submissionCols + ` FROM ehr_submission ` + where +
		` ORDER BY submitted_at DESC`
	if status != "" {
		query += ` LIMIT $3 OFFSET $4`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []*Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, s)
	}
	return subs, total, rows.Err()
}

// UpdateSubmissionStatus stamps completed_at on terminal statuses and
// increments retry_count on a retry, mirroring the ledger state machine.
func (r *repoPG) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status SubmissionStatus, ehrResponse []byte, errorMessage string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ehr_submission SET
			status = $2,
			completed_at = CASE WHEN $2 IN ('success','failed') THEN now() ELSE completed_at END,
			retry_count = retry_count + CASE WHEN $2 = 'retry' THEN 1 ELSE 0 END,
			ehr_response = COALESCE($3, ehr_response),
			error_message = CASE WHEN $4 <> '' THEN $4 ELSE error_message END,
			updated_at = now()
		WHERE id = $1`,
		id, status, ehrResponse, errorMessage)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SetSubmissionResult(ctx context.Context, id uuid.UUID, patientFHIRID, encounterFHIRID string, submissionData []byte) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE ehr_submission SET
			patient_fhir_id = $2,
			encounter_fhir_id = $3,
			submission_data = $4,
			updated_at = now()
		WHERE id = $1`,
		id, patientFHIRID, encounterFHIRID, submissionData)
	return err
}

func scanSubmission(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(
		&s.ID, &s.DoctorID, &s.PrescriptionID, &s.Provider, &s.Status,
		&s.PatientFHIRID, &s.EncounterFHIRID, &s.SubmissionData, &s.Metadata,
		&s.EHRResponse, &s.ErrorMessage, &s.RetryCount, &s.SubmittedAt, &s.CompletedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
