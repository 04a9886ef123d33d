package entity

import "time"

// QuizQuestion 测验题目。CorrectAnswer 与 Explanation 只在判分后返回给前端。
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuestionResult 单题作答结果
type QuestionResult struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

// Assessment 面试测验记录
type Assessment struct {
	ID             string           `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         string           `json:"user_id" gorm:"type:uuid;index;not null"`
	Category       string           `json:"category" gorm:"type:varchar(32)"`
	Questions      []QuizQuestion   `json:"questions" gorm:"serializer:json"`
	Results        []QuestionResult `json:"results,omitempty" gorm:"serializer:json"`
	QuizScore      float64          `json:"quiz_score"`
	ImprovementTip string           `json:"improvement_tip,omitempty" gorm:"type:text"`
	SubmittedAt    *time.Time       `json:"submitted_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Assessment) TableName() string {
	return "assessments"
}

// IsSubmitted 检查测验是否已提交
func (a *Assessment) IsSubmitted() bool {
	return a.SubmittedAt != nil
}

// Score 按作答计算得分（百分制）
func (a *Assessment) Score(answers []string) ([]QuestionResult, float64) {
	results := make([]QuestionResult, 0, len(a.Questions))
	correct := 0
	for i, q := range a.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		isCorrect := answer == q.CorrectAnswer
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}
	if len(a.Questions) == 0 {
		return results, 0
	}
	return results, float64(correct) / float64(len(a.Questions)) * 100
}

// WrongAnswers 返回答错的题目结果，供生成改进建议
func (a *Assessment) WrongAnswers() []QuestionResult {
	var wrong []QuestionResult
	for _, r := range a.Results {
		if !r.IsCorrect {
			wrong = append(wrong, r)
		}
	}
	return wrong
}
