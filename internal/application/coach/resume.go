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

// ResumeImprover 润色简历片段
type ResumeImprover struct {
	core
}

// NewResumeImprover 创建简历润色器
func NewResumeImprover(invoker *genai.Invoker, cfg config.GeminiConfig, recorder *quota.UsageRecorder) *ResumeImprover {
	return &ResumeImprover{core: newCore(invoker, cfg, recorder)}
}

// Improve 润色一段简历内容。section 如 "work experience"、"summary"。
func (r *ResumeImprover) Improve(ctx context.Context, user *entity.User, section, current string) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if !user.IsOnboarded() {
		return "", apperrors.ErrProfileIncomplete
	}
	if strings.TrimSpace(current) == "" {
		return "", apperrors.ErrInvalidParam.WithDetail("content is required")
	}
	if strings.TrimSpace(section) == "" {
		section = "work experience"
	}

	result, err := r.generate(ctx, user.ID, entity.KindResume, buildResumeImprovePrompt(user, section, current), genai.FormatText)
	if err != nil {
		return "", err
	}

	improved := strings.TrimSpace(result.RawText)
	if improved == "" {
		return "", apperrors.ErrInvalidAIOutput.WithDetail("empty improvement")
	}
	return improved, nil
}
