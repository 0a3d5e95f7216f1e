// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogEvaluation(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, signerID, documentID string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogEvaluation(ctx context.Context, log AuditLog) error {
	return s.repo.LogEvaluation(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, signerID, documentID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, signerID, documentID)
}
