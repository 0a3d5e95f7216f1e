// api/service/compliance_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oryxsign/etaverify/api/audit"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	eta_errors "github.com/oryxsign/etaverify/api/errors"
	logger "github.com/oryxsign/etaverify/api/logging"
	"github.com/oryxsign/etaverify/api/model"
	"github.com/oryxsign/etaverify/api/service"
	"github.com/oryxsign/etaverify/api/test/mock"
	"github.com/oryxsign/etaverify/api/util"
)

func newTestService(auditService audit.Service) *service.ComplianceService {
	return service.NewComplianceService(
		nil,
		auditService,
		util.NewValidationUtil(),
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func TestComplianceService_QueryAuditLogs(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		mockAudit := new(mock.MockAuditService)
		svc := newTestService(mockAudit)

		expected := []audit.AuditLog{
			{Action: "EVALUATE_COMPLIANCE", SignerID: "signer-1", ReportID: "r-1", Compliant: true, OverallScore: 100},
		}
		mockAudit.On("QueryLogs", ctx, from, to, "signer-1", "").Return(expected, nil)

		logs, err := svc.QueryAuditLogs(ctx, from, to, "signer-1", "")

		assert.NoError(t, err)
		assert.Equal(t, expected, logs)
		mockAudit.AssertExpectations(t)
	})

	t.Run("Failure_InvertedRange", func(t *testing.T) {
		mockAudit := new(mock.MockAuditService)
		svc := newTestService(mockAudit)

		logs, err := svc.QueryAuditLogs(ctx, to, from, "", "")

		assert.ErrorIs(t, err, eta_errors.ErrInvalidTimeRange)
		assert.Nil(t, logs)
		mockAudit.AssertNotCalled(t, "QueryLogs")
	})
}

func TestComplianceService_Validate_RejectsIncompleteRequest(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockAudit := new(mock.MockAuditService)
	svc := newTestService(mockAudit)
	ctx := context.Background()

	tests := []struct {
		name    string
		request compliance_model.ValidationRequest
	}{
		{"MissingSignature", compliance_model.ValidationRequest{Document: &model.DocumentRecord{ID: "doc-1"}}},
		{"MissingDocument", compliance_model.ValidationRequest{Signature: &model.SignatureRecord{SignerID: "signer-1"}}},
		{"MissingBoth", compliance_model.ValidationRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.Validate(ctx, tt.request)

			assert.ErrorIs(t, err, eta_errors.ErrInvalidValidationRequest)
			assert.Nil(t, report)
		})
	}
}

func TestComplianceService_ValidateBatch_RejectsEmptyBatch(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	mockAudit := new(mock.MockAuditService)
	svc := newTestService(mockAudit)

	reports, err := svc.ValidateBatch(context.Background(), compliance_model.BatchValidationRequest{}, 4)

	assert.ErrorIs(t, err, eta_errors.ErrInvalidValidationRequest)
	assert.Nil(t, reports)
}
