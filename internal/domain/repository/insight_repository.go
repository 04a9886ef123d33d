package repository

import (
	"context"
	"time"

	"senai-coach-api/internal/domain/entity"
)

// InsightRepository 行业洞察仓储接口
type InsightRepository interface {
	// GetByIndustry 获取某行业的洞察；不存在时返回 (nil, nil)
	GetByIndustry(ctx context.Context, industry string) (*entity.IndustryInsight, error)
	// Upsert 按行业插入或整行替换
	Upsert(ctx context.Context, insight *entity.IndustryInsight) error
	// ListDue 返回刷新时间已到的行业洞察
	ListDue(ctx context.Context, now time.Time) ([]*entity.IndustryInsight, error)
}
