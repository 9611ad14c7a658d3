package druginfo

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	svc := NewService()

	d, ok := svc.Lookup("warfarin")
	if !ok {
		t.Fatal("warfarin not found")
	}
	if d.Name != "warfarin" {
		t.Errorf("name = %q, want warfarin", d.Name)
	}
	if d.Class == "" || len(d.Interactions) == 0 {
		t.Error("warfarin entry incomplete")
	}

	if _, ok := svc.Lookup(" WARFARIN "); !ok {
		t.Error("lookup should ignore case and surrounding whitespace")
	}
	if _, ok := svc.Lookup("unobtanium"); ok {
		t.Error("unknown drug reported as found")
	}
}

func TestSearch(t *testing.T) {
	svc := NewService()

	results := svc.Search("met", 0)
	if len(results) == 0 {
		t.Fatal("no results for met")
	}
	for _, d := range results {
		if !strings.Contains(strings.ToLower(d.Name), "met") {
			t.Errorf("result %q does not match query", d.Name)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Name > results[i].Name {
			t.Fatal("results not sorted by name")
		}
	}

	limited := svc.Search("a", 2)
	if len(limited) > 2 {
		t.Errorf("limit not applied, got %d results", len(limited))
	}
}

func TestCheckInteractions_DrugDrug(t *testing.T) {
	svc := NewService()

	findings := svc.CheckInteractions([]string{"warfarin", "aspirin"})

	var pair *Finding
	for i := range findings {
		if findings[i].Type == "drug-drug" {
			pair = &findings[i]
			break
		}
	}
	if pair == nil {
		t.Fatal("warfarin + aspirin did not produce a drug-drug finding")
	}
	if pair.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", pair.Severity)
	}
	if pair.Drug1 != "warfarin" || pair.Drug2 != "aspirin" {
		t.Errorf("pair = %q + %q", pair.Drug1, pair.Drug2)
	}
	if pair.Warning == "" {
		t.Error("warning not carried from the first drug")
	}
}

func TestCheckInteractions_FoodAndContraindications(t *testing.T) {
	svc := NewService()

	findings := svc.CheckInteractions([]string{"warfarin"})

	var food, contra bool
	for _, f := range findings {
		switch f.Type {
		case "drug-food":
			food = true
			if f.Severity != SeverityModerate {
				t.Errorf("food severity = %q, want moderate", f.Severity)
			}
			if len(f.Foods) == 0 {
				t.Error("food finding lists no foods")
			}
		case "contraindication":
			contra = true
			if f.Severity != SeverityCritical {
				t.Errorf("contraindication severity = %q, want critical", f.Severity)
			}
			if !strings.HasPrefix(f.Warning, "Critical:") {
				t.Errorf("warning = %q", f.Warning)
			}
		}
	}
	if !food {
		t.Error("no drug-food finding for warfarin")
	}
	if !contra {
		t.Error("no contraindication finding for warfarin")
	}
}

func TestCheckInteractions_UnknownSkipped(t *testing.T) {
	svc := NewService()

	findings := svc.CheckInteractions([]string{"unobtanium", "vibranium"})
	if len(findings) != 0 {
		t.Errorf("unknown drugs produced %d findings, want 0", len(findings))
	}

	mixed := svc.CheckInteractions([]string{"unobtanium", "warfarin", "aspirin"})
	var pair bool
	for _, f := range mixed {
		if f.Type == "drug-drug" && f.Drug1 == "warfarin" && f.Drug2 == "aspirin" {
			pair = true
		}
	}
	if !pair {
		t.Error("known pair not checked when an unknown name is present")
	}
}

func TestCatalogConsistency(t *testing.T) {
	svc := NewService()

	if svc.Count() == 0 {
		t.Fatal("empty catalog")
	}
	for key, d := range catalog {
		if key != strings.ToLower(d.Name) {
			t.Errorf("catalog key %q does not match name %q", key, d.Name)
		}
		if d.Class == "" {
			t.Errorf("%s has no class", d.Name)
		}
	}
}
