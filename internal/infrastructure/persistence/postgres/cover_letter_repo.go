package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
)

// CoverLetterRepository 求职信仓储实现
type CoverLetterRepository struct {
	client *Client
}

// NewCoverLetterRepository 创建求职信仓储
func NewCoverLetterRepository(client *Client) *CoverLetterRepository {
	return &CoverLetterRepository{client: client}
}

// Create 创建求职信
func (r *CoverLetterRepository) Create(ctx context.Context, letter *entity.CoverLetter) error {
	ctx, span := tracer.Start(ctx, "postgres.CoverLetterRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(letter).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create cover letter: %w", err)
	}
	return nil
}

// GetByID 获取求职信
func (r *CoverLetterRepository) GetByID(ctx context.Context, id string) (*entity.CoverLetter, error) {
	ctx, span := tracer.Start(ctx, "postgres.CoverLetterRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var letter entity.CoverLetter
	if err := db.First(&letter, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}
	return &letter, nil
}

// Update 更新求职信
func (r *CoverLetterRepository) Update(ctx context.Context, letter *entity.CoverLetter) error {
	ctx, span := tracer.Start(ctx, "postgres.CoverLetterRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(letter).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update cover letter: %w", err)
	}
	return nil
}

// Delete 删除求职信
func (r *CoverLetterRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.CoverLetterRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.CoverLetter{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}
	return nil
}

// ListByUser 按用户分页列出求职信
func (r *CoverLetterRepository) ListByUser(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.CoverLetter], error) {
	ctx, span := tracer.Start(ctx, "postgres.CoverLetterRepository.ListByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)

	var total int64
	if err := db.Model(&entity.CoverLetter{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count cover letters: %w", err)
	}

	var items []*entity.CoverLetter
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&items).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list cover letters: %w", err)
	}

	return repository.NewPagedResult(items, total, pagination), nil
}
