// api/util/validation_util.go

package util

import (
	"fmt"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateRequest enforces the caller contract: the signature and document
// objects themselves must be present. Their fields are deliberately not
// checked here; empty fields fail requirement checks inside the engine
// instead of being rejected up front.
func (v *ValidationUtil) ValidateRequest(request compliance_model.ValidationRequest) error {
	if request.Signature == nil {
		return fmt.Errorf("signature object is required")
	}
	if request.Document == nil {
		return fmt.Errorf("document object is required")
	}
	return nil
}

func (v *ValidationUtil) ValidateBatchRequest(request compliance_model.BatchValidationRequest) error {
	if len(request.Items) == 0 {
		return fmt.Errorf("batch must contain at least one item")
	}
	for i, item := range request.Items {
		if err := v.ValidateRequest(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// ValidateSearchCriteria rejects inverted time ranges on report searches.
func (v *ValidationUtil) ValidateSearchCriteria(criteria compliance_model.ReportSearchCriteria) error {
	if !criteria.FromDate.IsZero() && !criteria.ToDate.IsZero() && criteria.ToDate.Before(criteria.FromDate) {
		return fmt.Errorf("search range end precedes start")
	}
	return nil
}
