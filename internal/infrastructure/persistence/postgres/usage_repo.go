package postgres

import (
	"context"
	"fmt"
	"time"

	"senai-coach-api/internal/domain/entity"
)

// UsageRepository 模型用量仓储实现
type UsageRepository struct {
	client *Client
}

// NewUsageRepository 创建模型用量仓储
func NewUsageRepository(client *Client) *UsageRepository {
	return &UsageRepository{client: client}
}

// Record 记录一次生成调用
func (r *UsageRepository) Record(ctx context.Context, event *entity.UsageEvent) error {
	ctx, span := tracer.Start(ctx, "postgres.UsageRepository.Record")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(event).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to record usage event: %w", err)
	}
	return nil
}

// CountByUserSince 统计用户自某时刻起的生成调用次数
func (r *UsageRepository) CountByUserSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	ctx, span := tracer.Start(ctx, "postgres.UsageRepository.CountByUserSince")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var count int64
	err := db.Model(&entity.UsageEvent{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to count usage events: %w", err)
	}
	return count, nil
}
