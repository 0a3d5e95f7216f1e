// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oryxsign/etaverify/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogEvaluation(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, from, to time.Time, signerID, documentID string) ([]audit.AuditLog, error) {
	args := m.Called(ctx, from, to, signerID, documentID)
	return args.Get(0).([]audit.AuditLog), args.Error(1)
}
