package repository

import (
	"context"
	"time"

	"senai-coach-api/internal/domain/entity"
)

// UsageRepository 模型用量仓储接口
type UsageRepository interface {
	// Record 记录一次生成调用
	Record(ctx context.Context, event *entity.UsageEvent) error
	// CountByUserSince 统计用户自某时刻起的生成调用次数
	CountByUserSince(ctx context.Context, userID string, since time.Time) (int64, error)
}
