// api/compliance/model/report.go
package model

import "time"

// SectionKind identifies one of the ETA 2019 requirement groupings. The set
// is closed: adding a section means adding a constant here and a validator
// branch in the engine.
type SectionKind string

const (
	SectionLegalRecognition     SectionKind = "section17"
	SectionElectronicSignatures SectionKind = "section20"
	SectionOriginalInformation  SectionKind = "section21"
	SectionAdmissibility        SectionKind = "section25"
	SectionConsumerProtection   SectionKind = "chapter4"
)

// AllSectionKinds returns the fixed evaluation order of the five sections.
func AllSectionKinds() []SectionKind {
	return []SectionKind{
		SectionLegalRecognition,
		SectionElectronicSignatures,
		SectionOriginalInformation,
		SectionAdmissibility,
		SectionConsumerProtection,
	}
}

// Threshold returns the minimum score at which the section counts as
// compliant. Consumer-protection checks are keyword heuristics and are held
// to a lower bar than the structural sections.
func (k SectionKind) Threshold() int {
	if k == SectionConsumerProtection {
		return 60
	}
	return 80
}

// ComplianceRequirement is a single boolean predicate check within a
// section. Critical marks requirements whose failure should dominate a human
// reading of the report; scoring weighs all requirements equally. Heuristic
// marks keyword-presence checks that approximate the legal requirement.
type ComplianceRequirement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Met         bool   `json:"met"`
	Evidence    string `json:"evidence"`
	Critical    bool   `json:"critical"`
	Heuristic   bool   `json:"heuristic,omitempty"`
}

type ComplianceSection struct {
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	Compliant       bool                    `json:"compliant"`
	Score           int                     `json:"score"`
	Requirements    []ComplianceRequirement `json:"requirements"`
	Issues          []string                `json:"issues"`
	Recommendations []string                `json:"recommendations"`
}

// ComplianceReport is the aggregated verdict over all five sections. ID,
// SignerID and DocumentID are filled in by the service layer when the report
// is persisted; the engine itself leaves them empty.
type ComplianceReport struct {
	ID              string                            `json:"id,omitempty"`
	SignerID        string                            `json:"signer_id,omitempty"`
	DocumentID      string                            `json:"document_id,omitempty"`
	Compliant       bool                              `json:"compliant"`
	Score           int                               `json:"score"`
	Sections        map[SectionKind]ComplianceSection `json:"sections"`
	Issues          []string                          `json:"issues"`
	Recommendations []string                          `json:"recommendations"`
	Timestamp       time.Time                         `json:"timestamp"`
}
