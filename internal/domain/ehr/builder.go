package ehr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medscribe/medscribe/internal/domain/prescription"
	"github.com/medscribe/medscribe/internal/platform/fhir"
)

// BundleBuilder translates prescription data into FHIR resources. All
// builds are pure given a fixed clock and id source; parse failures on
// upstream data degrade to omitted fields or resources, never errors. The
// capture path is voice transcription, so malformed vitals are routine and
// a single bad field must not abort the rest of the bundle.
type BundleBuilder struct {
	now   func() time.Time
	newID func() string
}

type BuilderOption func(*BundleBuilder)

// WithClock fixes the timestamp source, used by tests for deterministic
// output.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *BundleBuilder) { b.now = now }
}

// WithIDGenerator replaces the random resource id source.
func WithIDGenerator(newID func() string) BuilderOption {
	return func(b *BundleBuilder) { b.newID = newID }
}

func NewBundleBuilder(opts ...BuilderOption) *BundleBuilder {
	b := &BundleBuilder{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewID returns a fresh resource id from the builder's id source.
func (b *BundleBuilder) NewID() string { return b.newID() }

// Patient renders patient demographics. Name splits on the first space
// into given/family; an unrecognized gender falls back to "unknown"; the
// birth date is approximated as January 1st of (current year - age) and
// omitted entirely when age does not parse.
func (b *BundleBuilder) Patient(info prescription.PatientInfo, assignedID string) *fhir.Patient {
	p := &fhir.Patient{
		ResourceType: "Patient",
		ID:           assignedID,
	}

	if info.Name != "" {
		given, family := splitName(info.Name)
		p.Name = append(p.Name, fhir.HumanName{
			Use:    "official",
			Family: family,
			Given:  given,
		})
	}

	p.Gender = mapGender(info.Gender)

	if info.Age != "" {
		if age, err := strconv.Atoi(strings.TrimSpace(info.Age)); err == nil {
			p.BirthDate = fmt.Sprintf("%d-01-01", b.now().Year()-age)
		}
	}

	return p
}

// Practitioner renders the prescribing doctor. The rendered name always
// carries a "Dr." prefix; registration number becomes a PRN identifier and
// the degree becomes an MD qualification entry.
func (b *BundleBuilder) Practitioner(info PractitionerInfo, assignedID string) *fhir.Practitioner {
	pr := &fhir.Practitioner{
		ResourceType: "Practitioner",
		ID:           assignedID,
	}

	if info.RegistrationNumber != "" {
		pr.Identifier = append(pr.Identifier, fhir.Identifier{
			Use: "official",
			Type: &fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System:  "http://terminology.hl7.org/CodeSystem/v2-0203",
					Code:    "PRN",
					Display: "Provider Number",
				}},
			},
			Value: info.RegistrationNumber,
		})
	}

	if info.Name != "" {
		given, family := splitName(info.Name)
		pr.Name = append(pr.Name, fhir.HumanName{
			Use:    "official",
			Family: family,
			Given:  given,
			Prefix: []string{"Dr."},
		})
	}

	if info.Degree != "" {
		pr.Qualification = append(pr.Qualification, fhir.Qualification{
			Code: fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System:  "http://terminology.hl7.org/CodeSystem/v2-0360",
					Code:    "MD",
					Display: info.Degree,
				}},
			},
		})
	}

	return pr
}

// MedicationRequest renders one prescribed drug line. The coding is a
// synthetic rxnorm-style slug derived from the drug name, not a validated
// terminology lookup.
func (b *BundleBuilder) MedicationRequest(med prescription.Medication, patientRef, practitionerRef, assignedID string) *fhir.MedicationRequest {
	mr := &fhir.MedicationRequest{
		ResourceType: "MedicationRequest",
		ID:           assignedID,
		Status:       "active",
		Intent:       "order",
		MedicationCodeableConcept: &fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  "http://www.nlm.nih.gov/research/umls/rxnorm",
				Code:    "rxnorm-" + strings.ReplaceAll(strings.ToLower(med.Name), " ", "-"),
				Display: med.Name,
			}},
			Text: med.Name,
		},
		Subject:    fhir.Reference{Reference: patientRef},
		Requester:  fhir.Reference{Reference: practitionerRef},
		AuthoredOn: fhir.Timestamp(b.now()),
	}

	if med.Dosage != "" || med.Frequency != "" || med.Duration != "" {
		dosage := fhir.Dosage{
			Text: fmt.Sprintf("%s %s for %s", med.Dosage, med.Frequency, med.Duration),
			Timing: fhir.Timing{
				Repeat: fhir.Repeat{
					Frequency:  dailyFrequency(med.Frequency),
					Period:     1,
					PeriodUnit: "d",
				},
			},
		}

		if med.Dosage != "" {
			dosage.DoseAndRate = []fhir.DoseAndRate{{
				DoseQuantity: fhir.Quantity{
					Value: doseValue(med.Dosage),
					Unit:  doseUnit(med.Formulation),
				},
			}}
		}

		mr.DosageInstruction = append(mr.DosageInstruction, dosage)
	}

	if med.FoodInstruction != "" {
		mr.Note = append(mr.Note, fhir.Annotation{
			Text: "Take " + strings.ToLower(string(med.FoodInstruction)),
		})
	}

	return mr
}

// Encounter renders a point-in-time ambulatory encounter with the
// practitioner as primary performer; period start equals end.
func (b *BundleBuilder) Encounter(patientRef, practitionerRef, assignedID, diagnosis string) *fhir.Encounter {
	now := fhir.Timestamp(b.now())
	enc := &fhir.Encounter{
		ResourceType: "Encounter",
		ID:           assignedID,
		Class: fhir.Coding{
			System:  "http://terminology.hl7.org/CodeSystem/v3-ActCode",
			Code:    "AMB",
			Display: "ambulatory",
		},
		Subject: fhir.Reference{Reference: patientRef},
		Participant: []fhir.Participant{{
			Type: []fhir.CodeableConcept{{
				Coding: []fhir.Coding{{
					System:  "http://terminology.hl7.org/CodeSystem/v3-ParticipationType",
					Code:    "PPRF",
					Display: "primary performer",
				}},
			}},
			Individual: fhir.Reference{Reference: practitionerRef},
		}},
		Period: fhir.Period{Start: now, End: now},
	}

	if diagnosis != "" {
		enc.ReasonCode = append(enc.ReasonCode, fhir.CodeableConcept{Text: diagnosis})
	}

	return enc
}

// VitalObservations renders zero to three vital sign observations. Each
// vital is parsed defensively and skipped on failure.
func (b *BundleBuilder) VitalObservations(info prescription.PatientInfo, patientRef, encounterRef string) []*fhir.Observation {
	var observations []*fhir.Observation
	now := fhir.Timestamp(b.now())

	if obs := b.bloodPressure(info.BloodPressure, patientRef, encounterRef, now); obs != nil {
		observations = append(observations, obs)
	}
	if obs := b.heartRate(info.HeartRate, patientRef, encounterRef, now); obs != nil {
		observations = append(observations, obs)
	}
	if obs := b.temperature(info.Temperature, patientRef, encounterRef, now); obs != nil {
		observations = append(observations, obs)
	}

	return observations
}

func (b *BundleBuilder) bloodPressure(raw, patientRef, encounterRef, effective string) *fhir.Observation {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return nil
	}
	systolic, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	diastolic, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}

	obs := b.vitalObservation(patientRef, encounterRef, effective, fhir.Coding{
		System:  "http://loinc.org",
		Code:    "85354-9",
		Display: "Blood pressure panel with all children optional",
	})
	obs.Component = []fhir.ObservationComponent{
		{
			Code: fhir.CodeableConcept{Coding: []fhir.Coding{{
				System:  "http://loinc.org",
				Code:    "8480-6",
				Display: "Systolic blood pressure",
			}}},
			ValueQuantity: fhir.Quantity{
				Value:  systolic,
				Unit:   "mmHg",
				System: "http://unitsofmeasure.org",
				Code:   "mm[Hg]",
			},
		},
		{
			Code: fhir.CodeableConcept{Coding: []fhir.Coding{{
				System:  "http://loinc.org",
				Code:    "8462-4",
				Display: "Diastolic blood pressure",
			}}},
			ValueQuantity: fhir.Quantity{
				Value:  diastolic,
				Unit:   "mmHg",
				System: "http://unitsofmeasure.org",
				Code:   "mm[Hg]",
			},
		},
	}
	return obs
}

func (b *BundleBuilder) heartRate(raw, patientRef, encounterRef, effective string) *fhir.Observation {
	if raw == "" {
		return nil
	}
	rate, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	obs := b.vitalObservation(patientRef, encounterRef, effective, fhir.Coding{
		System:  "http://loinc.org",
		Code:    "8867-4",
		Display: "Heart rate",
	})
	obs.ValueQuantity = &fhir.Quantity{
		Value:  rate,
		Unit:   "beats/min",
		System: "http://unitsofmeasure.org",
		Code:   "/min",
	}
	return obs
}

func (b *BundleBuilder) temperature(raw, patientRef, encounterRef, effective string) *fhir.Observation {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}

	unit, code := temperatureUnit(value)
	obs := b.vitalObservation(patientRef, encounterRef, effective, fhir.Coding{
		System:  "http://loinc.org",
		Code:    "8310-5",
		Display: "Body temperature",
	})
	obs.ValueQuantity = &fhir.Quantity{
		Value:  value,
		Unit:   unit,
		System: "http://unitsofmeasure.org",
		Code:   code,
	}
	return obs
}

func (b *BundleBuilder) vitalObservation(patientRef, encounterRef, effective string, code fhir.Coding) *fhir.Observation {
	obs := &fhir.Observation{
		ResourceType: "Observation",
		ID:           b.newID(),
		Category: []fhir.CodeableConcept{{
			Coding: []fhir.Coding{{
				System:  "http://terminology.hl7.org/CodeSystem/observation-category",
				Code:    "vital-signs",
				Display: "Vital Signs",
			}},
		}},
		Code:              fhir.CodeableConcept{Coding: []fhir.Coding{code}},
		Subject:           fhir.Reference{Reference: patientRef},
		EffectiveDateTime: effective,
	}
	if encounterRef != "" {
		obs.Encounter = &fhir.Reference{Reference: encounterRef}
	}
	return obs
}

// Bundle assembles resources into a transaction bundle with one POST entry
// per resource, targeting the resource's own type as the request URL.
func (b *BundleBuilder) Bundle(resources []fhir.ResourceTyped, assignedID string) *fhir.Bundle {
	bundle := &fhir.Bundle{
		ResourceType: "Bundle",
		ID:           assignedID,
		Type:         "transaction",
		Timestamp:    fhir.Timestamp(b.now()),
		Entry:        make([]fhir.BundleEntry, 0, len(resources)),
	}
	for _, res := range resources {
		bundle.Entry = append(bundle.Entry, fhir.BundleEntry{
			Resource: res,
			Request: fhir.BundleRequest{
				Method: "POST",
				URL:    res.Type(),
			},
		})
	}
	return bundle
}

func splitName(name string) (given []string, family string) {
	parts := strings.SplitN(name, " ", 2)
	given = []string{parts[0]}
	if len(parts) > 1 {
		family = parts[1]
	}
	return given, family
}

func mapGender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male":
		return "male"
	case "female":
		return "female"
	case "other":
		return "other"
	default:
		return "unknown"
	}
}

// dailyFrequency infers doses per day from free-text frequency.
func dailyFrequency(frequency string) int {
	f := strings.ToLower(frequency)
	switch {
	case strings.Contains(f, "twice") || strings.Contains(f, "bid"):
		return 2
	case strings.Contains(f, "three") || strings.Contains(f, "tid"):
		return 3
	case strings.Contains(f, "four") || strings.Contains(f, "qid"):
		return 4
	default:
		return 1
	}
}

// doseValue takes the first whitespace-delimited token of the free-text
// dosage ("500mg twice" yields "500mg"). The token is passed through as
// text rather than parsed.
func doseValue(dosage string) string {
	fields := strings.Fields(dosage)
	if len(fields) == 0 {
		return "1"
	}
	return fields[0]
}

func doseUnit(formulation prescription.Formulation) string {
	if formulation == "" {
		return "tablet"
	}
	return string(formulation)
}

// temperatureUnit guesses the scale from the magnitude: readings at or
// below 45 are taken as Celsius, above as Fahrenheit. Kept isolated so an
// explicit unit field can replace it without touching callers.
func temperatureUnit(value float64) (unit, code string) {
	if value <= 45 {
		return "°C", "Cel"
	}
	return "°F", "[degF]"
}
