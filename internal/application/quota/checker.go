// Package quota 提供用户生成调用配额相关能力
package quota

import (
	"context"
	"fmt"
	"time"

	"senai-coach-api/internal/domain/repository"
)

// CallQuotaExceededError 表示用户当日生成调用配额已耗尽
type CallQuotaExceededError struct {
	UserID string
	Max    int
	Used   int64
}

func (e CallQuotaExceededError) Error() string {
	return fmt.Sprintf("call quota exceeded: user=%s used=%d max=%d", e.UserID, e.Used, e.Max)
}

// CallQuotaChecker 用于检查用户每日生成调用配额
type CallQuotaChecker struct {
	usageRepo  repository.UsageRepository
	dailyLimit int
	enabled    bool
	now        func() time.Time
}

// NewCallQuotaChecker 创建配额检查器。dailyLimit <= 0 表示不限制。
func NewCallQuotaChecker(usageRepo repository.UsageRepository, enabled bool, dailyLimit int) *CallQuotaChecker {
	return &CallQuotaChecker{
		usageRepo:  usageRepo,
		dailyLimit: dailyLimit,
		enabled:    enabled,
		now:        time.Now,
	}
}

// CheckDaily 检查用户是否还有当日生成调用配额。
// 返回：used/max（便于客户端展示），以及超过配额时的 error。
// 配额按 UTC 自然日统计。
func (c *CallQuotaChecker) CheckDaily(ctx context.Context, userID string) (used int64, max int, err error) {
	if !c.enabled || c.dailyLimit <= 0 {
		return 0, 0, nil
	}

	now := c.now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	used, err = c.usageRepo.CountByUserSince(ctx, userID, start)
	if err != nil {
		return 0, c.dailyLimit, err
	}
	if used >= int64(c.dailyLimit) {
		return used, c.dailyLimit, CallQuotaExceededError{
			UserID: userID,
			Max:    c.dailyLimit,
			Used:   used,
		}
	}
	return used, c.dailyLimit, nil
}
