package coach

import (
	"context"
	"fmt"
	"strings"

	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/config"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/genai"
	apperrors "senai-coach-api/pkg/errors"
)

// quizPayload 模型返回的测验 JSON 结构
type quizPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

// AssessmentGenerator 生成面试测验与改进建议
type AssessmentGenerator struct {
	core
}

// NewAssessmentGenerator 创建测验生成器
func NewAssessmentGenerator(invoker *genai.Invoker, cfg config.GeminiConfig, recorder *quota.UsageRecorder) *AssessmentGenerator {
	return &AssessmentGenerator{core: newCore(invoker, cfg, recorder)}
}

// GenerateQuiz 按用户画像生成一组面试单选题
func (g *AssessmentGenerator) GenerateQuiz(ctx context.Context, user *entity.User) ([]entity.QuizQuestion, error) {
	if user == nil {
		return nil, fmt.Errorf("user is nil")
	}
	if !user.IsOnboarded() {
		return nil, apperrors.ErrProfileIncomplete
	}

	result, err := g.generate(ctx, user.ID, entity.KindQuiz, buildQuizPrompt(user), genai.FormatJSON)
	if err != nil {
		return nil, err
	}

	var payload quizPayload
	if err := genai.DecodeJSON(result.RawText, &payload); err != nil {
		return nil, mapGenError(err)
	}
	if len(payload.Questions) == 0 {
		return nil, apperrors.ErrInvalidAIOutput.WithDetail("quiz contains no questions")
	}

	questions := make([]entity.QuizQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) == 0 {
			return nil, apperrors.ErrInvalidAIOutput.WithDetail("quiz question missing fields")
		}
		questions = append(questions, entity.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return questions, nil
}

// ImprovementTip 根据错题生成改进建议。
// 调用方应在失败时打日志后继续，不阻塞判分流程。
func (g *AssessmentGenerator) ImprovementTip(ctx context.Context, user *entity.User, wrong []entity.QuestionResult) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if len(wrong) == 0 {
		return "", nil
	}

	result, err := g.generate(ctx, user.ID, entity.KindTip, buildTipPrompt(user, wrong), genai.FormatText)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.RawText), nil
}
