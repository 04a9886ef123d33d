package dto

import (
	"time"

	"senai-coach-api/internal/domain/entity"
)

// QuizQuestionDTO 测验题目。未提交前不返回答案与解析。
type QuizQuestionDTO struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// AssessmentResponse 测验响应
type AssessmentResponse struct {
	ID             string                  `json:"id"`
	Category       string                  `json:"category"`
	Questions      []QuizQuestionDTO       `json:"questions"`
	Results        []entity.QuestionResult `json:"results,omitempty"`
	QuizScore      float64                 `json:"quiz_score"`
	ImprovementTip string                  `json:"improvement_tip,omitempty"`
	SubmittedAt    *time.Time              `json:"submitted_at,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

// ToAssessmentDTO 由实体转换。未提交的测验隐藏答案。
func ToAssessmentDTO(a *entity.Assessment) *AssessmentResponse {
	if a == nil {
		return nil
	}
	submitted := a.IsSubmitted()
	questions := make([]QuizQuestionDTO, 0, len(a.Questions))
	for _, q := range a.Questions {
		dto := QuizQuestionDTO{
			Question: q.Question,
			Options:  q.Options,
		}
		if submitted {
			dto.CorrectAnswer = q.CorrectAnswer
			dto.Explanation = q.Explanation
		}
		questions = append(questions, dto)
	}

	resp := &AssessmentResponse{
		ID:          a.ID,
		Category:    a.Category,
		Questions:   questions,
		QuizScore:   a.QuizScore,
		SubmittedAt: a.SubmittedAt,
		CreatedAt:   a.CreatedAt,
	}
	if submitted {
		resp.Results = a.Results
		resp.ImprovementTip = a.ImprovementTip
	}
	return resp
}

// SubmitAssessmentRequest 提交作答请求
type SubmitAssessmentRequest struct {
	Answers []string `json:"answers" binding:"required,min=1"`
}
