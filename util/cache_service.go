// api/util/cache_service.go

package util

import (
	"context"
	"time"

	compliance_model "github.com/oryxsign/etaverify/api/compliance/model"
	"github.com/oryxsign/etaverify/api/db"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetReport(ctx context.Context, reportID string) (*compliance_model.ComplianceReport, error) {
	return db.GetCachedReport(ctx, reportID)
}

func (c *CacheService) SetReport(ctx context.Context, report compliance_model.ComplianceReport) error {
	return db.CacheReport(ctx, &report)
}

func (c *CacheService) DeleteReport(ctx context.Context, reportID string) error {
	return db.DeleteCachedReport(ctx, reportID)
}

// LockReport takes a short-lived lock on a report so concurrent mutations
// of the same report are serialized.
func (c *CacheService) LockReport(ctx context.Context, reportID string, ttl time.Duration) (bool, error) {
	return db.LockResource(ctx, "report:"+reportID, ttl)
}

func (c *CacheService) UnlockReport(ctx context.Context, reportID string) error {
	return db.UnlockResource(ctx, "report:"+reportID)
}
