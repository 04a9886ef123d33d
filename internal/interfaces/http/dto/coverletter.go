package dto

import (
	"time"

	"senai-coach-api/internal/domain/entity"
)

// CreateCoverLetterRequest 创建求职信请求
type CreateCoverLetterRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description"`
}

// UpdateCoverLetterRequest 更新求职信请求
type UpdateCoverLetterRequest struct {
	Content string `json:"content" binding:"required"`
}

// CoverLetterResponse 求职信响应
type CoverLetterResponse struct {
	ID             string    `json:"id"`
	CompanyName    string    `json:"company_name"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description,omitempty"`
	Content        string    `json:"content"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCoverLetterDTO 由实体转换
func ToCoverLetterDTO(l *entity.CoverLetter) *CoverLetterResponse {
	if l == nil {
		return nil
	}
	return &CoverLetterResponse{
		ID:             l.ID,
		CompanyName:    l.CompanyName,
		JobTitle:       l.JobTitle,
		JobDescription: l.JobDescription,
		Content:        l.Content,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
