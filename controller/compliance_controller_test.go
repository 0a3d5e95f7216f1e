// api/controller/compliance_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/controller"
	eta_errors "github.com/oryxsign/etaverify/api/errors"
	logger "github.com/oryxsign/etaverify/api/logging"
	mock_service "github.com/oryxsign/etaverify/api/test/service_mock"
)

func setupRouter() *gin.Engine {
	r := gin.Default()
	return r
}

func TestComplianceController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockComplianceService := mock_service.NewMockIComplianceService(ctrl)
	complianceController := controller.NewComplianceController(mockComplianceService)
	router := setupRouter()
	api := router.Group("/")
	complianceController.RegisterRoutes(api)

	validBody := `{
		"signature": {"signer_id": "signer-1", "document_id": "doc-1", "verification_hash": "sha256:9e8d"},
		"document": {"id": "doc-1", "content": "terms", "format": "pdf"}
	}`

	t.Run("Validate_Success", func(t *testing.T) {
		mockComplianceService.EXPECT().
			Validate(gomock.Any(), gomock.Any()).
			Return(&compliance_model.ComplianceReport{ID: "1", Compliant: true, Score: 93}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/compliance/validate", strings.NewReader(validBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var report compliance_model.ComplianceReport
		json.NewDecoder(w.Body).Decode(&report)
		assert.True(t, report.Compliant)
		assert.Equal(t, 93, report.Score)
	})

	t.Run("Validate_Failure_MissingDocument", func(t *testing.T) {
		// Binding fails before the service is reached.
		body := strings.NewReader(`{"signature": {"signer_id": "signer-1"}}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/compliance/validate", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validate_Failure_Conflict", func(t *testing.T) {
		mockComplianceService.EXPECT().
			Validate(gomock.Any(), gomock.Any()).
			Return(nil, eta_errors.ErrReportConflict)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/compliance/validate", strings.NewReader(validBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("ValidateBatch_Success", func(t *testing.T) {
		reports := []*compliance_model.ComplianceReport{
			{ID: "1", Compliant: true, Score: 100},
			{ID: "2", Compliant: false, Score: 55},
		}

		mockComplianceService.EXPECT().
			ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reports, nil)

		body := strings.NewReader(`{"items": [` + validBody + `,` + validBody + `]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/compliance/validate/batch", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("GetReport_Success", func(t *testing.T) {
		mockComplianceService.EXPECT().
			GetReport(gomock.Any(), "1").
			Return(&compliance_model.ComplianceReport{ID: "1", Compliant: true, Score: 87}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/reports/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetReport_Failure_NotFound", func(t *testing.T) {
		mockComplianceService.EXPECT().
			GetReport(gomock.Any(), "missing").
			Return(nil, eta_errors.ErrReportNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/reports/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListReports_Success", func(t *testing.T) {
		reports := []*compliance_model.ComplianceReport{
			{ID: "1", Compliant: true, Score: 95},
			{ID: "2", Compliant: false, Score: 60},
		}

		mockComplianceService.EXPECT().
			ListReports(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reports, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/reports?document_id=doc-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteReport_Success", func(t *testing.T) {
		mockComplianceService.EXPECT().
			DeleteReport(gomock.Any(), "1").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/compliance/reports/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DeleteReport_Failure_NotFound", func(t *testing.T) {
		mockComplianceService.EXPECT().
			DeleteReport(gomock.Any(), "missing").
			Return(eta_errors.ErrReportNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/compliance/reports/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteReport_Failure_Locked", func(t *testing.T) {
		mockComplianceService.EXPECT().
			DeleteReport(gomock.Any(), "1").
			Return(eta_errors.ErrReportConflict)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/compliance/reports/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetStats_Success", func(t *testing.T) {
		stats := &compliance_model.ComplianceStats{
			ReportCount:    12,
			AverageScore:   81.5,
			CompliantRatio: 0.75,
			SectionAverages: map[compliance_model.SectionKind]float64{
				compliance_model.SectionLegalRecognition: 92.0,
			},
		}

		mockComplianceService.EXPECT().
			GetStats(gomock.Any()).
			Return(stats, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/stats", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseStats compliance_model.ComplianceStats
		json.NewDecoder(w.Body).Decode(&responseStats)
		assert.Equal(t, stats.ReportCount, responseStats.ReportCount)
		assert.Equal(t, stats.AverageScore, responseStats.AverageScore)
	})

	t.Run("QueryAuditLogs_Success", func(t *testing.T) {
		mockComplianceService.EXPECT().
			QueryAuditLogs(gomock.Any(), gomock.Any(), gomock.Any(), "signer-1", "").
			Return(nil, nil)

		from := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/audit?signer_id=signer-1&from="+from, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("QueryAuditLogs_Failure_BadTimestamp", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/compliance/audit?from=yesterday", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
