// api/compliance/model/request.go
package model

import (
	"time"

	"github.com/oryxsign/etaverify/api/model"
)

// ValidationRequest is the envelope a caller submits for evaluation. The two
// top-level objects are mandatory; everything inside them may be empty and
// simply fails the relevant checks.
type ValidationRequest struct {
	Signature *model.SignatureRecord `json:"signature" binding:"required"`
	Document  *model.DocumentRecord  `json:"document" binding:"required"`
}

type BatchValidationRequest struct {
	Items []ValidationRequest `json:"items" binding:"required,min=1,dive"`
}

// ReportSearchCriteria filters persisted reports.
type ReportSearchCriteria struct {
	SignerID   string
	DocumentID string
	Compliant  *bool
	FromDate   time.Time
	ToDate     time.Time
}

// ComplianceStats aggregates persisted evaluation outcomes.
type ComplianceStats struct {
	ReportCount     int                     `json:"report_count"`
	AverageScore    float64                 `json:"average_score"`
	CompliantRatio  float64                 `json:"compliant_ratio"`
	SectionAverages map[SectionKind]float64 `json:"section_averages"`
	From            time.Time               `json:"from,omitempty"`
	To              time.Time               `json:"to,omitempty"`
}
