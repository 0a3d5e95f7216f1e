// api/service/services.go
package service

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/oryxsign/etaverify/api/audit"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/dao"
	"github.com/oryxsign/etaverify/api/util"
)

// IComplianceService is the contract the controllers program against.
type IComplianceService interface {
	Validate(ctx context.Context, request compliance_model.ValidationRequest) (*compliance_model.ComplianceReport, error)
	ValidateBatch(ctx context.Context, request compliance_model.BatchValidationRequest, maxConcurrency int) ([]*compliance_model.ComplianceReport, error)
	GetReport(ctx context.Context, reportID string) (*compliance_model.ComplianceReport, error)
	ListReports(ctx context.Context, criteria compliance_model.ReportSearchCriteria, limit, offset int) ([]*compliance_model.ComplianceReport, error)
	DeleteReport(ctx context.Context, reportID string) error
	GetStats(ctx context.Context) (*compliance_model.ComplianceStats, error)
	QueryAuditLogs(ctx context.Context, from, to time.Time, signerID, documentID string) ([]audit.AuditLog, error)
}

type Services struct {
	Compliance IComplianceService
}

func InitializeServices(
	driver neo4j.Driver,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	reportDAO := dao.NewReportDAO(driver, auditService)

	services := &Services{
		Compliance: NewComplianceService(reportDAO, auditService, validationUtil, cacheService, notificationSvc, eventBus),
	}

	return services, nil
}
