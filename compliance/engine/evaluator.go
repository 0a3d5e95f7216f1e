// api/compliance/engine/evaluator.go
package engine

import (
	"math"
	"time"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/model"
)

// A report is compliant overall once the mean of the section scores reaches
// this value. Sections are averaged unweighted regardless of their
// requirement counts or individual thresholds.
const overallComplianceThreshold = 70

// ComplianceEvaluator scores a signature event against the ETA 2019
// requirement checklists. It is stateless; a single instance may be shared
// across goroutines.
type ComplianceEvaluator struct{}

func NewComplianceEvaluator() *ComplianceEvaluator {
	return &ComplianceEvaluator{}
}

// Evaluate runs all five section validators and aggregates their results.
// It never fails: absent or empty input fields produce unmet requirements,
// not errors. Apart from the report timestamp the result is a pure function
// of its inputs.
func (e *ComplianceEvaluator) Evaluate(signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceReport {
	kinds := compliance_model.AllSectionKinds()
	sections := make(map[compliance_model.SectionKind]compliance_model.ComplianceSection, len(kinds))

	var issues []string
	var recommendations []string
	scoreSum := 0

	for _, kind := range kinds {
		section := e.evaluateSection(kind, signature, document)
		sections[kind] = section
		scoreSum += section.Score
		issues = append(issues, section.Issues...)
		recommendations = append(recommendations, section.Recommendations...)
	}

	score := int(math.Round(float64(scoreSum) / float64(len(kinds))))

	return compliance_model.ComplianceReport{
		Compliant:       score >= overallComplianceThreshold,
		Score:           score,
		Sections:        sections,
		Issues:          dedupeStrings(issues),
		Recommendations: dedupeStrings(recommendations),
		Timestamp:       time.Now().UTC(),
	}
}

func (e *ComplianceEvaluator) evaluateSection(kind compliance_model.SectionKind, signature model.SignatureRecord, document model.DocumentRecord) compliance_model.ComplianceSection {
	switch kind {
	case compliance_model.SectionLegalRecognition:
		return e.evaluateLegalRecognition(signature, document)
	case compliance_model.SectionElectronicSignatures:
		return e.evaluateElectronicSignatures(signature, document)
	case compliance_model.SectionOriginalInformation:
		return e.evaluateOriginalInformation(signature, document)
	case compliance_model.SectionAdmissibility:
		return e.evaluateAdmissibility(signature, document)
	case compliance_model.SectionConsumerProtection:
		return e.evaluateConsumerProtection(signature, document)
	default:
		return compliance_model.ComplianceSection{Name: string(kind)}
	}
}

// buildSection scores the requirement list against the section threshold and
// attaches the section's issue and recommendation messages only when the
// threshold is missed.
func buildSection(kind compliance_model.SectionKind, name, description string, requirements []compliance_model.ComplianceRequirement, issues, recommendations []string) compliance_model.ComplianceSection {
	score := scoreRequirements(requirements)
	compliant := score >= kind.Threshold()

	section := compliance_model.ComplianceSection{
		Name:            name,
		Description:     description,
		Compliant:       compliant,
		Score:           score,
		Requirements:    requirements,
		Issues:          []string{},
		Recommendations: []string{},
	}
	if !compliant {
		section.Issues = issues
		section.Recommendations = recommendations
	}
	return section
}

func scoreRequirements(requirements []compliance_model.ComplianceRequirement) int {
	if len(requirements) == 0 {
		return 0
	}
	met := 0
	for _, r := range requirements {
		if r.Met {
			met++
		}
	}
	return int(math.Round(float64(met*100) / float64(len(requirements))))
}

// dedupeStrings removes exact duplicates while keeping first-seen order.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
