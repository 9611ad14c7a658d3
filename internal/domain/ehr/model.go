package ehr

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Provider identifies the external EHR platform a configuration targets,
// not a medical provider.
type Provider string

const (
	ProviderEpic           Provider = "epic"
	ProviderCerner         Provider = "cerner"
	ProviderAllscripts     Provider = "allscripts"
	ProviderAthenaHealth   Provider = "athenahealth"
	ProviderEClinicalWorks Provider = "eclinicalworks"
	ProviderNextGen        Provider = "nextgen"
	ProviderCustomFHIR     Provider = "custom_fhir"
	ProviderOther          Provider = "other"
)

var validProviders = map[Provider]bool{
	ProviderEpic: true, ProviderCerner: true, ProviderAllscripts: true,
	ProviderAthenaHealth: true, ProviderEClinicalWorks: true,
	ProviderNextGen: true, ProviderCustomFHIR: true, ProviderOther: true,
}

func (p Provider) Valid() bool { return validProviders[p] }

// ProviderInfo is the catalog entry returned by the providers endpoint.
type ProviderInfo struct {
	Value       Provider `json:"value"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
}

// SupportedProviders lists every EHR platform the service can target.
func SupportedProviders() []ProviderInfo {
	return []ProviderInfo{
		{ProviderEpic, "Epic MyChart", "Epic Systems EHR platform"},
		{ProviderCerner, "Cerner PowerChart", "Oracle Cerner EHR platform"},
		{ProviderAllscripts, "Allscripts", "Allscripts EHR platform"},
		{ProviderAthenaHealth, "athenahealth", "athenahealth EHR platform"},
		{ProviderEClinicalWorks, "eClinicalWorks", "eClinicalWorks EHR platform"},
		{ProviderNextGen, "NextGen", "NextGen Healthcare EHR platform"},
		{ProviderCustomFHIR, "Custom FHIR", "Custom FHIR-compliant endpoint"},
		{ProviderOther, "Other", "Other FHIR-compliant EHR system"},
	}
}

type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusTesting      ConnectionStatus = "testing"
	StatusError        ConnectionStatus = "error"
)

type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionSuccess SubmissionStatus = "success"
	SubmissionFailed  SubmissionStatus = "failed"
	SubmissionRetry   SubmissionStatus = "retry"
)

var validSubmissionStatuses = map[SubmissionStatus]bool{
	SubmissionPending: true, SubmissionSuccess: true,
	SubmissionFailed: true, SubmissionRetry: true,
}

func (s SubmissionStatus) Valid() bool { return validSubmissionStatuses[s] }

// Configuration maps to the ehr_configuration table. A doctor holds at most
// one active configuration per provider; saving again for the same provider
// replaces it in place.
type Configuration struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DoctorID     uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Provider     Provider  `db:"provider" json:"provider"`
	BaseURL      string    `db:"base_url" json:"base_url"`
	ClientID     string    `db:"client_id" json:"client_id,omitempty"`
	ClientSecret string    `db:"client_secret" json:"client_secret,omitempty"`
	AuthURL      string    `db:"auth_url" json:"auth_url,omitempty"`
	TokenURL     string    `db:"token_url" json:"token_url,omitempty"`
	Scope        string    `db:"scope" json:"scope,omitempty"`
	APIKey       string    `db:"api_key" json:"api_key,omitempty"`
	Organization string    `db:"organization" json:"organization,omitempty"`
	FacilityID   string    `db:"facility_id" json:"facility_id,omitempty"`
	Timeout      int       `db:"timeout" json:"timeout"`
	VerifySSL    bool      `db:"verify_ssl" json:"verify_ssl"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ConnectionTest is one probe of a configured endpoint. ResponseTime is nil
// on the timeout path, where no round trip completed.
type ConnectionTest struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	DoctorID     uuid.UUID        `db:"doctor_id" json:"doctor_id"`
	Provider     Provider         `db:"provider" json:"provider"`
	Status       ConnectionStatus `db:"status" json:"status"`
	Message      string           `db:"message" json:"message"`
	ResponseTime *float64         `db:"response_time" json:"response_time,omitempty"`
	LastTested   time.Time        `db:"last_tested" json:"last_tested"`
	Capabilities []string         `db:"capabilities" json:"capabilities,omitempty"`
	FHIRVersion  string           `db:"fhir_version" json:"fhir_version,omitempty"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// Submission is one ledger row per submission attempt. The row is created
// before the network call runs so a record exists even if the process dies
// mid-flight. SubmissionData holds the bundle actually sent.
type Submission struct {
	ID                uuid.UUID        `db:"id" json:"id"`
	DoctorID          uuid.UUID        `db:"doctor_id" json:"doctor_id"`
	PrescriptionID    uuid.UUID        `db:"prescription_id" json:"prescription_id"`
	Provider          Provider         `db:"ehr_provider" json:"ehr_provider"`
	Status            SubmissionStatus `db:"status" json:"status"`
	PatientFHIRID     *string          `db:"patient_fhir_id" json:"patient_fhir_id,omitempty"`
	EncounterFHIRID   *string          `db:"encounter_fhir_id" json:"encounter_fhir_id,omitempty"`
	SubmissionData    json.RawMessage  `db:"submission_data" json:"submission_data,omitempty"`
	Metadata          json.RawMessage  `db:"metadata" json:"metadata,omitempty"`
	EHRResponse       json.RawMessage  `db:"ehr_response" json:"ehr_response,omitempty"`
	ErrorMessage      string           `db:"error_message" json:"error_message,omitempty"`
	RetryCount        int              `db:"retry_count" json:"retry_count"`
	SubmittedAt       time.Time        `db:"submitted_at" json:"submitted_at"`
	CompletedAt       *time.Time       `db:"completed_at" json:"completed_at,omitempty"`
	UpdatedAt         time.Time        `db:"updated_at" json:"updated_at"`
}

// PractitionerInfo carries the doctor fields the FHIR builder renders into
// a Practitioner resource.
type PractitionerInfo struct {
	Name               string
	RegistrationNumber string
	Degree             string
}
