// Package fhir holds the FHIR R4 wire shapes this service sends to external
// EHR systems. Only the elements the submission pipeline actually emits are
// modeled; this is a client-side projection, not a full resource model.
package fhir

import "time"

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Family string   `json:"family"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
}

type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Quantity carries a measured or prescribed amount. Value is deliberately
// untyped: vitals emit numbers while dose quantities pass the leading dosage
// token through as text, matching what downstream EHR endpoints accept today.
type Quantity struct {
	Value  interface{} `json:"value,omitempty"`
	Unit   string      `json:"unit,omitempty"`
	System string      `json:"system,omitempty"`
	Code   string      `json:"code,omitempty"`
}

type Annotation struct {
	Text string `json:"text"`
}

type Repeat struct {
	Frequency  int    `json:"frequency"`
	Period     int    `json:"period"`
	PeriodUnit string `json:"periodUnit"`
}

type Timing struct {
	Repeat Repeat `json:"repeat"`
}

type DoseAndRate struct {
	DoseQuantity Quantity `json:"doseQuantity"`
}

type Dosage struct {
	Text        string        `json:"text"`
	Timing      Timing        `json:"timing"`
	DoseAndRate []DoseAndRate `json:"doseAndRate,omitempty"`
}

type Qualification struct {
	Code CodeableConcept `json:"code"`
}

type Participant struct {
	Type       []CodeableConcept `json:"type,omitempty"`
	Individual Reference         `json:"individual"`
}

type ObservationComponent struct {
	Code          CodeableConcept `json:"code"`
	ValueQuantity Quantity        `json:"valueQuantity"`
}

// -- Resources --

type Patient struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         []HumanName  `json:"name,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	BirthDate    string       `json:"birthDate,omitempty"`
}

type Practitioner struct {
	ResourceType  string          `json:"resourceType"`
	ID            string          `json:"id,omitempty"`
	Identifier    []Identifier    `json:"identifier,omitempty"`
	Name          []HumanName     `json:"name,omitempty"`
	Qualification []Qualification `json:"qualification,omitempty"`
}

type MedicationRequest struct {
	ResourceType              string           `json:"resourceType"`
	ID                        string           `json:"id,omitempty"`
	Status                    string           `json:"status"`
	Intent                    string           `json:"intent"`
	MedicationCodeableConcept *CodeableConcept `json:"medicationCodeableConcept,omitempty"`
	Subject                   Reference        `json:"subject"`
	Requester                 Reference        `json:"requester"`
	DosageInstruction         []Dosage         `json:"dosageInstruction,omitempty"`
	Note                      []Annotation     `json:"note,omitempty"`
	AuthoredOn                string           `json:"authoredOn,omitempty"`
}

type Encounter struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status,omitempty"`
	Class        Coding            `json:"class"`
	Subject      Reference         `json:"subject"`
	Participant  []Participant     `json:"participant,omitempty"`
	Period       Period            `json:"period"`
	ReasonCode   []CodeableConcept `json:"reasonCode,omitempty"`
}

type Observation struct {
	ResourceType      string                 `json:"resourceType"`
	ID                string                 `json:"id,omitempty"`
	Status            string                 `json:"status,omitempty"`
	Category          []CodeableConcept      `json:"category,omitempty"`
	Code              CodeableConcept        `json:"code"`
	Subject           Reference              `json:"subject"`
	Encounter         *Reference             `json:"encounter,omitempty"`
	EffectiveDateTime string                 `json:"effectiveDateTime,omitempty"`
	ValueQuantity     *Quantity              `json:"valueQuantity,omitempty"`
	Component         []ObservationComponent `json:"component,omitempty"`
}

type BundleRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

type BundleEntry struct {
	Resource interface{}   `json:"resource"`
	Request  BundleRequest `json:"request"`
}

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp"`
	Entry        []BundleEntry `json:"entry"`
}

// ResourceTyped is implemented by every resource that knows its own
// resourceType discriminator; bundle assembly uses it for request URLs.
type ResourceTyped interface {
	Type() string
}

func (p *Patient) Type() string           { return p.ResourceType }
func (p *Practitioner) Type() string      { return p.ResourceType }
func (m *MedicationRequest) Type() string { return m.ResourceType }
func (e *Encounter) Type() string         { return e.ResourceType }
func (o *Observation) Type() string       { return o.ResourceType }

// FormatReference renders a FHIR literal reference such as "Patient/123".
func FormatReference(resourceType, id string) string {
	return resourceType + "/" + id
}

// Timestamp renders a time in the RFC 3339 form FHIR instants use.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
