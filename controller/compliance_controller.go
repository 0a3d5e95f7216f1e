// api/controller/compliance_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/config"
	eta_errors "github.com/oryxsign/etaverify/api/errors"
	"github.com/oryxsign/etaverify/api/service"
	"github.com/oryxsign/etaverify/api/util"
	helper_util "github.com/oryxsign/etaverify/api/util/helper"
)

type ComplianceController struct {
	complianceService service.IComplianceService
}

func NewComplianceController(complianceService service.IComplianceService) *ComplianceController {
	return &ComplianceController{
		complianceService: complianceService,
	}
}

// RegisterRoutes registers the API routes
func (cc *ComplianceController) RegisterRoutes(r *gin.RouterGroup) {
	compliance := r.Group("/compliance")
	{
		compliance.POST("/validate", cc.Validate)
		compliance.POST("/validate/batch", cc.ValidateBatch)
		compliance.GET("/reports/:id", cc.GetReport)
		compliance.GET("/reports", cc.ListReports)
		compliance.DELETE("/reports/:id", cc.DeleteReport)
		compliance.GET("/stats", cc.GetStats)
		compliance.GET("/audit", cc.QueryAuditLogs)
	}
}

// Validate endpoint
func (cc *ComplianceController) Validate(c *gin.Context) {
	var request compliance_model.ValidationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid validation request", eta_errors.ErrInvalidValidationRequest)
		return
	}

	report, err := cc.complianceService.Validate(c, request)
	if err != nil {
		switch {
		case errors.Is(err, eta_errors.ErrInvalidValidationRequest):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid validation request", err)
		case errors.Is(err, eta_errors.ErrReportConflict):
			util.RespondWithError(c, http.StatusConflict, "Report already exists", err)
		case errors.Is(err, eta_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate compliance", eta_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ValidateBatch endpoint
func (cc *ComplianceController) ValidateBatch(c *gin.Context) {
	var request compliance_model.BatchValidationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid batch validation request", eta_errors.ErrInvalidValidationRequest)
		return
	}

	reports, err := cc.complianceService.ValidateBatch(c, request, config.GetInt("batch.maxConcurrency"))
	if err != nil {
		if errors.Is(err, eta_errors.ErrInvalidValidationRequest) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid batch validation request", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to evaluate batch", err)
		}
		return
	}

	c.JSON(http.StatusCreated, reports)
}

// GetReport endpoint
func (cc *ComplianceController) GetReport(c *gin.Context) {
	reportID := c.Param("id")

	report, err := cc.complianceService.GetReport(c, reportID)
	if err != nil {
		if errors.Is(err, eta_errors.ErrReportNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Report not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve report", err)
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListReports endpoint
func (cc *ComplianceController) ListReports(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", eta_errors.ErrInvalidPagination)
		return
	}

	criteria := compliance_model.ReportSearchCriteria{
		SignerID:   c.Query("signer_id"),
		DocumentID: c.Query("document_id"),
	}

	reports, err := cc.complianceService.ListReports(c, criteria, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list reports", err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// DeleteReport endpoint
func (cc *ComplianceController) DeleteReport(c *gin.Context) {
	reportID := c.Param("id")

	if err := cc.complianceService.DeleteReport(c, reportID); err != nil {
		switch {
		case errors.Is(err, eta_errors.ErrReportNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Report not found", err)
		case errors.Is(err, eta_errors.ErrReportConflict):
			util.RespondWithError(c, http.StatusConflict, "Report is being modified by another request", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete report", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats endpoint
func (cc *ComplianceController) GetStats(c *gin.Context) {
	stats, err := cc.complianceService.GetStats(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute compliance statistics", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// QueryAuditLogs endpoint
func (cc *ComplianceController) QueryAuditLogs(c *gin.Context) {
	to := time.Now()
	from := to.Add(-24 * time.Hour)

	if raw := c.Query("from"); raw != "" {
		parsed, err := helper_util.ParseTime(raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := helper_util.ParseTime(raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
		to = parsed
	}

	logs, err := cc.complianceService.QueryAuditLogs(c, from, to, c.Query("signer_id"), c.Query("document_id"))
	if err != nil {
		if errors.Is(err, eta_errors.ErrInvalidTimeRange) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		}
		return
	}

	c.JSON(http.StatusOK, logs)
}
