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

// CoverLetterGenerator 生成求职信
type CoverLetterGenerator struct {
	core
}

// NewCoverLetterGenerator 创建求职信生成器
func NewCoverLetterGenerator(invoker *genai.Invoker, cfg config.GeminiConfig, recorder *quota.UsageRecorder) *CoverLetterGenerator {
	return &CoverLetterGenerator{core: newCore(invoker, cfg, recorder)}
}

// Generate 基于用户画像与职位描述生成一封 Markdown 求职信
func (g *CoverLetterGenerator) Generate(ctx context.Context, user *entity.User, companyName, jobTitle, jobDescription string) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if !user.IsOnboarded() {
		return "", apperrors.ErrProfileIncomplete
	}
	if strings.TrimSpace(companyName) == "" || strings.TrimSpace(jobTitle) == "" {
		return "", apperrors.ErrInvalidParam.WithDetail("company name and job title are required")
	}

	result, err := g.generate(ctx, user.ID, entity.KindCoverLetter, buildCoverLetterPrompt(user, companyName, jobTitle, jobDescription), genai.FormatText)
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(result.RawText)
	if content == "" {
		return "", apperrors.ErrInvalidAIOutput.WithDetail("empty cover letter")
	}
	return content, nil
}
