package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"senai-coach-api/internal/domain/entity"
)

// InsightRepository 行业洞察仓储实现
type InsightRepository struct {
	client *Client
}

// NewInsightRepository 创建行业洞察仓储
func NewInsightRepository(client *Client) *InsightRepository {
	return &InsightRepository{client: client}
}

// GetByIndustry 获取某行业的洞察
func (r *InsightRepository) GetByIndustry(ctx context.Context, industry string) (*entity.IndustryInsight, error) {
	ctx, span := tracer.Start(ctx, "postgres.InsightRepository.GetByIndustry")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var insight entity.IndustryInsight
	if err := db.First(&insight, "industry = ?", industry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return &insight, nil
}

// Upsert 按行业插入或整行替换
func (r *InsightRepository) Upsert(ctx context.Context, insight *entity.IndustryInsight) error {
	ctx, span := tracer.Start(ctx, "postgres.InsightRepository.Upsert")
	defer span.End()

	db := getDB(ctx, r.client.db)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "industry"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"salary_ranges", "growth_rate", "demand_level", "top_skills",
			"market_outlook", "key_trends", "recommended_skills",
			"last_updated", "next_update",
		}),
	}).Create(insight).Error
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert insight: %w", err)
	}
	return nil
}

// ListDue 返回刷新时间已到的行业洞察
func (r *InsightRepository) ListDue(ctx context.Context, now time.Time) ([]*entity.IndustryInsight, error) {
	ctx, span := tracer.Start(ctx, "postgres.InsightRepository.ListDue")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var insights []*entity.IndustryInsight
	if err := db.Where("next_update <= ?", now).Find(&insights).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list due insights: %w", err)
	}
	return insights, nil
}
