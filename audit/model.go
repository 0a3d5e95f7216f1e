// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp    time.Time       `json:"timestamp"`
	SignerID     string          `json:"signer_id"`
	DocumentID   string          `json:"document_id"`
	Action       string          `json:"action"` // e.g. "EVALUATE_COMPLIANCE", "DELETE_REPORT"
	ReportID     string          `json:"report_id"`
	Compliant    bool            `json:"compliant"`
	OverallScore int             `json:"overall_score"`
	Details      json.RawMessage `json:"details,omitempty"`
}
