package repository

import (
	"context"

	"senai-coach-api/internal/domain/entity"
)

// AssessmentRepository 面试测验仓储接口
type AssessmentRepository interface {
	// Create 创建测验
	Create(ctx context.Context, assessment *entity.Assessment) error
	// GetByID 获取测验；不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.Assessment, error)
	// Update 更新测验（提交作答、写入改进建议）
	Update(ctx context.Context, assessment *entity.Assessment) error
	// ListByUser 按用户分页列出测验，按创建时间倒序
	ListByUser(ctx context.Context, userID string, pagination Pagination) (*PagedResult[*entity.Assessment], error)
}
