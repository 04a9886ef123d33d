package repository

import (
	"context"

	"senai-coach-api/internal/domain/entity"
)

// CoverLetterRepository 求职信仓储接口
type CoverLetterRepository interface {
	// Create 创建求职信
	Create(ctx context.Context, letter *entity.CoverLetter) error
	// GetByID 获取求职信；不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.CoverLetter, error)
	// Update 更新求职信
	Update(ctx context.Context, letter *entity.CoverLetter) error
	// Delete 删除求职信
	Delete(ctx context.Context, id string) error
	// ListByUser 按用户分页列出求职信，按创建时间倒序
	ListByUser(ctx context.Context, userID string, pagination Pagination) (*PagedResult[*entity.CoverLetter], error)
}
