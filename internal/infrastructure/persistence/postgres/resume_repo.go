package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"senai-coach-api/internal/domain/entity"
)

// ResumeRepository 简历仓储实现
type ResumeRepository struct {
	client *Client
}

// NewResumeRepository 创建简历仓储
func NewResumeRepository(client *Client) *ResumeRepository {
	return &ResumeRepository{client: client}
}

// GetByUser 获取用户简历
func (r *ResumeRepository) GetByUser(ctx context.Context, userID string) (*entity.Resume, error) {
	ctx, span := tracer.Start(ctx, "postgres.ResumeRepository.GetByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var resume entity.Resume
	if err := db.First(&resume, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &resume, nil
}

// Upsert 按用户插入或更新简历
func (r *ResumeRepository) Upsert(ctx context.Context, resume *entity.Resume) error {
	ctx, span := tracer.Start(ctx, "postgres.ResumeRepository.Upsert")
	defer span.End()

	db := getDB(ctx, r.client.db)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content", "ats_score", "feedback", "updated_at",
		}),
	}).Create(resume).Error
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert resume: %w", err)
	}
	return nil
}
