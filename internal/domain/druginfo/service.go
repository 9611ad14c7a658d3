// Package druginfo serves the built-in medication reference: drug lookup,
// name search, and interaction checks across a proposed set of drugs.
package druginfo

import (
	"fmt"
	"sort"
	"strings"
)

type Service struct {
	drugs map[string]Drug
}

func NewService() *Service {
	return &Service{drugs: catalog}
}

// Lookup returns the drug whose name matches exactly, ignoring case.
func (s *Service) Lookup(name string) (Drug, bool) {
	d, ok := s.drugs[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Search returns up to limit drugs whose names contain query, ignoring
// case. Results are sorted by name so pagination is stable.
func (s *Service) Search(query string, limit int) []Drug {
	query = strings.ToLower(strings.TrimSpace(query))
	if limit <= 0 {
		limit = 20
	}

	var matches []Drug
	for name, d := range s.drugs {
		if strings.Contains(name, query) {
			matches = append(matches, d)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Count returns the number of drugs in the catalog.
func (s *Service) Count() int {
	return len(s.drugs)
}

// CheckInteractions reports drug-drug interactions between every pair in
// names, plus food interactions and contraindications for each known drug.
// Unknown names are skipped rather than rejected.
func (s *Service) CheckInteractions(names []string) []Finding {
	findings := []Finding{}

	for i, first := range names {
		info, ok := s.Lookup(first)
		if !ok {
			continue
		}
		for _, second := range names[i+1:] {
			if interactsWith(info, second) {
				findings = append(findings, Finding{
					Type:        "drug-drug",
					Severity:    SeverityHigh,
					Drug1:       first,
					Drug2:       second,
					Description: fmt.Sprintf("Interaction between %s and %s", first, second),
					Warning:     info.Warnings,
				})
			}
		}
	}

	for _, name := range names {
		info, ok := s.Lookup(name)
		if !ok {
			continue
		}
		if len(info.FoodInteractions) > 0 {
			findings = append(findings, Finding{
				Type:        "drug-food",
				Severity:    SeverityModerate,
				Drug:        name,
				Foods:       info.FoodInteractions,
				Description: fmt.Sprintf("Food interactions with %s", name),
				Warning:     info.Warnings,
			})
		}
		if len(info.Contraindications) > 0 {
			findings = append(findings, Finding{
				Type:              "contraindication",
				Severity:          SeverityCritical,
				Drug:              name,
				Contraindications: info.Contraindications,
				Description:       fmt.Sprintf("Contraindications for %s", name),
				Warning:           fmt.Sprintf("Critical: Review contraindications for %s", name),
			})
		}
	}

	return findings
}

func interactsWith(d Drug, other string) bool {
	other = strings.ToLower(strings.TrimSpace(other))
	for _, name := range d.Interactions {
		if strings.ToLower(name) == other {
			return true
		}
	}
	return false
}
