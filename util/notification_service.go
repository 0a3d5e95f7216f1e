// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	logger "github.com/oryxsign/etaverify/api/logging"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyReportChange surfaces evaluation outcomes to downstream consumers.
// Currently log-only; the real deployment feeds a message queue consumed by
// the dashboard.
func (n *NotificationService) NotifyReportChange(ctx context.Context, changeType string, report compliance_model.ComplianceReport) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: Compliance report created",
			zap.String("reportID", report.ID),
			zap.String("documentID", report.DocumentID),
			zap.Bool("compliant", report.Compliant),
			zap.Int("score", report.Score))
	case "deleted":
		logger.Info("NOTIFICATION: Compliance report deleted",
			zap.String("reportID", report.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

// NotifyNonCompliance flags failed evaluations separately so operators can
// alert on them.
func (n *NotificationService) NotifyNonCompliance(ctx context.Context, report compliance_model.ComplianceReport) error {
	logger.Warn("NOTIFICATION: Non-compliant evaluation",
		zap.String("reportID", report.ID),
		zap.String("signerID", report.SignerID),
		zap.String("documentID", report.DocumentID),
		zap.Int("score", report.Score),
		zap.Strings("issues", report.Issues))
	return nil
}
