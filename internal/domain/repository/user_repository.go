package repository

import (
	"context"

	"senai-coach-api/internal/domain/entity"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	// Create 创建用户
	Create(ctx context.Context, user *entity.User) error
	// GetByID 根据 ID 获取用户；不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail 根据邮箱获取用户；不存在时返回 (nil, nil)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmail 检查邮箱是否已注册
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update 更新用户
	Update(ctx context.Context, user *entity.User) error
	// DistinctIndustries 返回所有用户覆盖的行业（去重）
	DistinctIndustries(ctx context.Context) ([]string, error)
}
