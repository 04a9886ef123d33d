package dto

import (
	"time"

	"senai-coach-api/internal/domain/entity"
)

// SaveResumeRequest 保存简历请求
type SaveResumeRequest struct {
	Content string `json:"content" binding:"required"`
}

// ImproveResumeRequest 润色简历片段请求
type ImproveResumeRequest struct {
	Section string `json:"section"`
	Content string `json:"content" binding:"required"`
}

// ImproveResumeResponse 润色结果
type ImproveResumeResponse struct {
	Improved string `json:"improved"`
}

// ResumeResponse 简历响应
type ResumeResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AtsScore  float64   `json:"ats_score,omitempty"`
	Feedback  string    `json:"feedback,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResumeDTO 由实体转换
func ToResumeDTO(r *entity.Resume) *ResumeResponse {
	if r == nil {
		return nil
	}
	return &ResumeResponse{
		ID:        r.ID,
		Content:   r.Content,
		AtsScore:  r.AtsScore,
		Feedback:  r.Feedback,
		UpdatedAt: r.UpdatedAt,
	}
}
