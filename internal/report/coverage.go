package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/roach88/specdoc/internal/spec"
)

// Coverage summarises how many business requirements have technical detail.
type Coverage struct {
	BusinessCount  int `json:"business_count"`
	TechnicalCount int `json:"technical_count"`
	// CoveredCount counts distinct business requirement ids referenced by at
	// least one technical requirement. Ids with no business requirement are
	// not counted.
	CoveredCount int     `json:"covered_count"`
	Percent      float64 `json:"coverage_percent"`
	// Defined is false when there are no business requirements; Percent is
	// then 0.
	Defined bool `json:"coverage_defined"`
}

// ComputeCoverage computes coverage statistics for s.
func ComputeCoverage(s *spec.Spec) Coverage {
	c := Coverage{
		BusinessCount:  len(s.BusinessRequirements),
		TechnicalCount: len(s.TechnicalRequirements),
	}

	covered := make(map[string]bool)
	for _, tr := range s.TechnicalRequirements {
		key := tr.RequirementID.String()
		if covered[key] || !s.HasBusinessRequirement(tr.RequirementID) {
			continue
		}
		covered[key] = true
	}
	c.CoveredCount = len(covered)

	if c.BusinessCount > 0 {
		c.Percent = float64(c.CoveredCount) * 100 / float64(c.BusinessCount)
		c.Defined = true
	}
	return c
}

// PercentString formats the percentage with the shortest single-precision
// representation ("75", "66.666664"), or "n/a" when undefined.
func (c Coverage) PercentString() string {
	if !c.Defined {
		return "n/a"
	}
	return strconv.FormatFloat(c.Percent, 'f', -1, 32) + "%"
}

// WriteCoverage prints the text form of c.
func WriteCoverage(w io.Writer, c Coverage) error {
	_, err := fmt.Fprintf(w,
		"Spec Stats\nBusiness Requirements: %d\nTechnical Requirements: %d\nPercentage Requirements Technically Specified: %s\n",
		c.BusinessCount, c.TechnicalCount, c.PercentString())
	return err
}
