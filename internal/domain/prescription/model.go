package prescription

import (
	"time"

	"github.com/google/uuid"
)

// PatientInfo captures patient demographics and vitals as free text. The
// upstream capture path is voice transcription, so every field is optional
// and may hold malformed values; consumers must parse defensively.
type PatientInfo struct {
	Name             string `json:"name,omitempty"`
	Age              string `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Height           string `json:"height,omitempty"`
	Weight           string `json:"weight,omitempty"`
	BloodPressure    string `json:"blood_pressure,omitempty"`
	Temperature      string `json:"temperature,omitempty"`
	HeartRate        string `json:"heart_rate,omitempty"`
	RespiratoryRate  string `json:"respiratory_rate,omitempty"`
	OxygenSaturation string `json:"oxygen_saturation,omitempty"`
}

type MedicalHistory struct {
	Allergies          string `json:"allergies,omitempty"`
	PastMedicalHistory string `json:"past_medical_history,omitempty"`
	PastMedications    string `json:"past_medications,omitempty"`
	FamilyHistory      string `json:"family_history,omitempty"`
	SmokingStatus      string `json:"smoking_status,omitempty"`
	AlcoholUse         string `json:"alcohol_use,omitempty"`
	DrugUse            string `json:"drug_use,omitempty"`
	ExerciseLevel      string `json:"exercise_level,omitempty"`
}

type Formulation string

const (
	FormulationTablet      Formulation = "Tablet"
	FormulationCapsule     Formulation = "Capsule"
	FormulationSyrup       Formulation = "Syrup"
	FormulationSuspension  Formulation = "Suspension"
	FormulationInjection   Formulation = "Injection"
	FormulationCream       Formulation = "Cream"
	FormulationOintment    Formulation = "Ointment"
	FormulationDrops       Formulation = "Drops"
	FormulationInhaler     Formulation = "Inhaler"
	FormulationPatch       Formulation = "Patch"
	FormulationGel         Formulation = "Gel"
	FormulationLotion      Formulation = "Lotion"
	FormulationPowder      Formulation = "Powder"
	FormulationSolution    Formulation = "Solution"
	FormulationSuppository Formulation = "Suppository"
	FormulationSpray       Formulation = "Spray"
)

var validFormulations = map[Formulation]bool{
	FormulationTablet: true, FormulationCapsule: true, FormulationSyrup: true,
	FormulationSuspension: true, FormulationInjection: true, FormulationCream: true,
	FormulationOintment: true, FormulationDrops: true, FormulationInhaler: true,
	FormulationPatch: true, FormulationGel: true, FormulationLotion: true,
	FormulationPowder: true, FormulationSolution: true, FormulationSuppository: true,
	FormulationSpray: true,
}

func (f Formulation) Valid() bool { return validFormulations[f] }

type Route string

const (
	RouteOral          Route = "Oral"
	RouteIntravenous   Route = "Intravenous"
	RouteIntramuscular Route = "Intramuscular"
	RouteSubcutaneous  Route = "Subcutaneous"
	RouteTopical       Route = "Topical"
	RouteSublingual    Route = "Sublingual"
	RouteRectal        Route = "Rectal"
	RouteVaginal       Route = "Vaginal"
	RouteInhalation    Route = "Inhalation"
	RouteNasogastric   Route = "Nasogastric"
)

var validRoutes = map[Route]bool{
	RouteOral: true, RouteIntravenous: true, RouteIntramuscular: true,
	RouteSubcutaneous: true, RouteTopical: true, RouteSublingual: true,
	RouteRectal: true, RouteVaginal: true, RouteInhalation: true,
	RouteNasogastric: true,
}

func (r Route) Valid() bool { return validRoutes[r] }

type FoodInstruction string

const (
	BeforeMeals     FoodInstruction = "Before meals"
	AfterMeals      FoodInstruction = "After meals"
	WithFood        FoodInstruction = "With food"
	WithoutFood     FoodInstruction = "Without food"
	OnEmptyStomach  FoodInstruction = "On empty stomach"
	BeforeBreakfast FoodInstruction = "Before breakfast"
	AfterBreakfast  FoodInstruction = "After breakfast"
	BeforeLunch     FoodInstruction = "Before lunch"
	AfterLunch      FoodInstruction = "After lunch"
	BeforeDinner    FoodInstruction = "Before dinner"
	AfterDinner     FoodInstruction = "After dinner"
)

var validFoodInstructions = map[FoodInstruction]bool{
	BeforeMeals: true, AfterMeals: true, WithFood: true, WithoutFood: true,
	OnEmptyStomach: true, BeforeBreakfast: true, AfterBreakfast: true,
	BeforeLunch: true, AfterLunch: true, BeforeDinner: true, AfterDinner: true,
}

func (fi FoodInstruction) Valid() bool { return validFoodInstructions[fi] }

// Medication is one prescribed drug line. Dosage, frequency and duration are
// free text ("500mg", "twice daily", "7 days").
type Medication struct {
	Name            string          `json:"name"`
	Dosage          string          `json:"dosage"`
	Formulation     Formulation     `json:"formulation"`
	Route           Route           `json:"route"`
	Frequency       string          `json:"frequency"`
	FoodInstruction FoodInstruction `json:"food_instruction"`
	Duration        string          `json:"duration"`
}

// Prescription maps to the prescription table. DoctorID is always set
// server-side from the authenticated caller.
type Prescription struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	DoctorID       uuid.UUID      `db:"doctor_id" json:"doctor_id"`
	PatientInfo    PatientInfo    `db:"patient_info" json:"patient_info"`
	MedicalHistory MedicalHistory `db:"medical_history" json:"medical_history"`
	Diagnosis      string         `db:"diagnosis" json:"diagnosis"`
	Medications    []Medication   `db:"medications" json:"medications"`
	Prognosis      string         `db:"prognosis" json:"prognosis"`
	Transcript     string         `db:"transcript" json:"transcript,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}
