package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
)

// AssessmentRepository 面试测验仓储实现
type AssessmentRepository struct {
	client *Client
}

// NewAssessmentRepository 创建面试测验仓储
func NewAssessmentRepository(client *Client) *AssessmentRepository {
	return &AssessmentRepository{client: client}
}

// Create 创建测验
func (r *AssessmentRepository) Create(ctx context.Context, assessment *entity.Assessment) error {
	ctx, span := tracer.Start(ctx, "postgres.AssessmentRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(assessment).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

// GetByID 获取测验
func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (*entity.Assessment, error) {
	ctx, span := tracer.Start(ctx, "postgres.AssessmentRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var assessment entity.Assessment
	if err := db.First(&assessment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return &assessment, nil
}

// Update 更新测验
func (r *AssessmentRepository) Update(ctx context.Context, assessment *entity.Assessment) error {
	ctx, span := tracer.Start(ctx, "postgres.AssessmentRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(assessment).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	return nil
}

// ListByUser 按用户分页列出测验
func (r *AssessmentRepository) ListByUser(ctx context.Context, userID string, pagination repository.Pagination) (*repository.PagedResult[*entity.Assessment], error) {
	ctx, span := tracer.Start(ctx, "postgres.AssessmentRepository.ListByUser")
	defer span.End()

	db := getDB(ctx, r.client.db)

	var total int64
	if err := db.Model(&entity.Assessment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}

	var items []*entity.Assessment
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&items).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	return repository.NewPagedResult(items, total, pagination), nil
}
