package druginfo

// Drug describes a medication in the reference catalog.
type Drug struct {
	Name              string   `json:"name"`
	Class             string   `json:"class"`
	Interactions      []string `json:"interactions"`
	FoodInteractions  []string `json:"food_interactions"`
	Warnings          string   `json:"warnings"`
	Contraindications []string `json:"contraindications"`
	SideEffects       []string `json:"side_effects"`
}

// Severity grades a finding returned by an interaction check.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityModerate = "moderate"
)

// Finding is a single interaction or contraindication surfaced for a
// set of drugs.
type Finding struct {
	Type              string   `json:"type"`
	Severity          string   `json:"severity"`
	Drug              string   `json:"drug,omitempty"`
	Drug1             string   `json:"drug1,omitempty"`
	Drug2             string   `json:"drug2,omitempty"`
	Foods             []string `json:"foods,omitempty"`
	Contraindications []string `json:"contraindications,omitempty"`
	Description       string   `json:"description"`
	Warning           string   `json:"warning"`
}
