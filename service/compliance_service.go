package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oryxsign/etaverify/api/audit"
	"github.com/oryxsign/etaverify/api/compliance/engine"
	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/dao"
	eta_errors "github.com/oryxsign/etaverify/api/errors"
	logger "github.com/oryxsign/etaverify/api/logging"
	"github.com/oryxsign/etaverify/api/util"
)

const reportLockTTL = 10 * time.Second

// ComplianceService handles business logic for compliance validation
type ComplianceService struct {
	reportDAO       *dao.ReportDAO
	evaluator       *engine.ComplianceEvaluator
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

// NewComplianceService creates a new instance of ComplianceService
func NewComplianceService(reportDAO *dao.ReportDAO, auditService audit.Service, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *ComplianceService {
	service := &ComplianceService{
		reportDAO:       reportDAO,
		evaluator:       engine.NewComplianceEvaluator(),
		auditService:    auditService,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("report.created", service.handleReportCreated)
	eventBus.Subscribe("report.deleted", service.handleReportDeleted)

	return service
}

func (s *ComplianceService) handleReportCreated(ctx context.Context, event util.Event) error {
	report, ok := event.Payload.(compliance_model.ComplianceReport)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Report created event received",
		zap.String("reportID", report.ID),
		zap.Bool("compliant", report.Compliant))

	if err := s.notificationSvc.NotifyReportChange(ctx, "created", report); err != nil {
		logger.Warn("Failed to send report creation notification", zap.Error(err), zap.String("reportID", report.ID))
	}

	if !report.Compliant {
		if err := s.notificationSvc.NotifyNonCompliance(ctx, report); err != nil {
			logger.Warn("Failed to send non-compliance notification", zap.Error(err), zap.String("reportID", report.ID))
		}
	}

	return nil
}

func (s *ComplianceService) handleReportDeleted(ctx context.Context, event util.Event) error {
	reportID, ok := event.Payload.(string)
	if !ok {
		logger.Error("Invalid event payload type", zap.Any("payload", event.Payload))
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	logger.Info("Report deleted event received", zap.String("reportID", reportID))

	if err := s.notificationSvc.NotifyReportChange(ctx, "deleted", compliance_model.ComplianceReport{ID: reportID}); err != nil {
		logger.Warn("Failed to send report deletion notification", zap.Error(err), zap.String("reportID", reportID))
	}

	return nil
}

// Validate evaluates a signature/document pair, persists the outcome and
// returns the report. The evaluation itself cannot fail; only persistence
// can.
func (s *ComplianceService) Validate(ctx context.Context, request compliance_model.ValidationRequest) (*compliance_model.ComplianceReport, error) {
	if err := s.validationUtil.ValidateRequest(request); err != nil {
		return nil, fmt.Errorf("%w: %v", eta_errors.ErrInvalidValidationRequest, err)
	}

	report := s.evaluator.Evaluate(*request.Signature, *request.Document)
	report.SignerID = request.Signature.SignerID
	report.DocumentID = request.Document.ID

	reportID, err := s.reportDAO.CreateReport(ctx, report, *request.Signature, *request.Document)
	if err != nil {
		logger.Error("Error persisting report", zap.Error(err), zap.String("documentID", request.Document.ID))
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}
	report.ID = reportID

	// Update cache
	if err := s.cacheService.SetReport(ctx, report); err != nil {
		logger.Warn("Failed to cache report", zap.Error(err), zap.String("reportID", reportID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "report.created", report)

	logger.Info("Compliance evaluated",
		zap.String("reportID", reportID),
		zap.String("documentID", request.Document.ID),
		zap.Bool("compliant", report.Compliant),
		zap.Int("score", report.Score))
	return &report, nil
}

// ValidateBatch evaluates multiple pairs in parallel. Evaluations are
// independent, so concurrency needs no coordination beyond bounding it.
func (s *ComplianceService) ValidateBatch(ctx context.Context, request compliance_model.BatchValidationRequest, maxConcurrency int) ([]*compliance_model.ComplianceReport, error) {
	if err := s.validationUtil.ValidateBatchRequest(request); err != nil {
		return nil, fmt.Errorf("%w: %v", eta_errors.ErrInvalidValidationRequest, err)
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 10
	}

	g, ctx := errgroup.WithContext(ctx)
	reports := make([]*compliance_model.ComplianceReport, len(request.Items))

	semaphore := make(chan struct{}, maxConcurrency)

	for i, item := range request.Items {
		i, item := i, item
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			report, err := s.Validate(ctx, item)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Error in batch validation", zap.Error(err), zap.Int("count", len(request.Items)))
		return nil, fmt.Errorf("failed to validate batch: %w", err)
	}

	logger.Info("Batch validation completed", zap.Int("count", len(reports)))
	return reports, nil
}

// GetReport retrieves a persisted report by its ID
func (s *ComplianceService) GetReport(ctx context.Context, reportID string) (*compliance_model.ComplianceReport, error) {
	// Try to get from cache first
	cachedReport, err := s.cacheService.GetReport(ctx, reportID)
	if err == nil && cachedReport != nil {
		return cachedReport, nil
	}

	report, err := s.reportDAO.GetReport(ctx, reportID)
	if err != nil {
		if errors.Is(err, eta_errors.ErrReportNotFound) {
			return nil, eta_errors.ErrReportNotFound
		}
		logger.Error("Error retrieving report", zap.Error(err), zap.String("reportID", reportID))
		return nil, eta_errors.ErrInternalServer
	}

	// Update cache
	if err := s.cacheService.SetReport(ctx, *report); err != nil {
		logger.Warn("Failed to cache report", zap.Error(err), zap.String("reportID", reportID))
	}

	return report, nil
}

// ListReports retrieves persisted reports, possibly with pagination
func (s *ComplianceService) ListReports(ctx context.Context, criteria compliance_model.ReportSearchCriteria, limit, offset int) ([]*compliance_model.ComplianceReport, error) {
	if err := s.validationUtil.ValidateSearchCriteria(criteria); err != nil {
		return nil, fmt.Errorf("%w: %v", eta_errors.ErrInvalidSearchCriteria, err)
	}

	reports, err := s.reportDAO.ListReports(ctx, criteria, limit, offset)
	if err != nil {
		logger.Error("Error listing reports", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reports, nil
}

// DeleteReport removes a persisted report. A short redis lock serializes
// concurrent deletions of the same report.
func (s *ComplianceService) DeleteReport(ctx context.Context, reportID string) error {
	locked, err := s.cacheService.LockReport(ctx, reportID, reportLockTTL)
	if err != nil {
		logger.Warn("Failed to acquire report lock, proceeding without it", zap.Error(err), zap.String("reportID", reportID))
	} else if !locked {
		return eta_errors.ErrReportConflict
	} else {
		defer func() {
			if err := s.cacheService.UnlockReport(ctx, reportID); err != nil {
				logger.Warn("Failed to release report lock", zap.Error(err), zap.String("reportID", reportID))
			}
		}()
	}

	err = s.reportDAO.DeleteReport(ctx, reportID)
	if err != nil {
		if !errors.Is(err, eta_errors.ErrReportNotFound) {
			logger.Error("Error deleting report", zap.Error(err), zap.String("reportID", reportID))
		}
		return err
	}

	// Remove from cache
	if err := s.cacheService.DeleteReport(ctx, reportID); err != nil {
		logger.Warn("Failed to delete report from cache", zap.Error(err), zap.String("reportID", reportID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "report.deleted", reportID)

	logger.Info("Report deleted successfully", zap.String("reportID", reportID))
	return nil
}

// GetStats aggregates persisted evaluation outcomes
func (s *ComplianceService) GetStats(ctx context.Context) (*compliance_model.ComplianceStats, error) {
	stats, err := s.reportDAO.GetComplianceStats(ctx)
	if err != nil {
		logger.Error("Error computing compliance stats", zap.Error(err))
		return nil, fmt.Errorf("failed to compute compliance stats: %w", err)
	}

	return stats, nil
}

// QueryAuditLogs returns the evaluation audit trail for a time range
func (s *ComplianceService) QueryAuditLogs(ctx context.Context, from, to time.Time, signerID, documentID string) ([]audit.AuditLog, error) {
	if to.Before(from) {
		return nil, eta_errors.ErrInvalidTimeRange
	}

	logs, err := s.auditService.QueryLogs(ctx, from, to, signerID, documentID)
	if err != nil {
		logger.Error("Error querying audit logs", zap.Error(err))
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}

	return logs, nil
}
