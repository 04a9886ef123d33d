package repository

import (
	"context"

	"senai-coach-api/internal/domain/entity"
)

// ResumeRepository 简历仓储接口
type ResumeRepository interface {
	// GetByUser 获取用户简历；不存在时返回 (nil, nil)
	GetByUser(ctx context.Context, userID string) (*entity.Resume, error)
	// Upsert 按用户插入或更新简历
	Upsert(ctx context.Context, resume *entity.Resume) error
}
