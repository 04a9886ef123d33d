package quota

import (
	"context"
	"strings"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/domain/repository"
	"senai-coach-api/pkg/logger"
)

// UsageInput 单次生成调用的用量信息
type UsageInput struct {
	UserID       string
	Kind         entity.GenerationKind
	Model        string
	UsedFallback bool
	DurationMs   int
}

// UsageRecorder 记录生成调用用量。记录失败只打日志，不影响主流程。
type UsageRecorder struct {
	usageRepo repository.UsageRepository
}

// NewUsageRecorder 创建用量记录器
func NewUsageRecorder(usageRepo repository.UsageRepository) *UsageRecorder {
	return &UsageRecorder{usageRepo: usageRepo}
}

// Record 记录一次生成调用
func (r *UsageRecorder) Record(ctx context.Context, in UsageInput) {
	if r == nil || r.usageRepo == nil {
		return
	}

	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return
	}

	evt := &entity.UsageEvent{
		UserID:       userID,
		Kind:         in.Kind,
		Model:        strings.TrimSpace(in.Model),
		UsedFallback: in.UsedFallback,
		DurationMs:   in.DurationMs,
	}
	if err := r.usageRepo.Record(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("failed to record usage event",
			"error", err,
			"user_id", userID,
			"kind", in.Kind,
		)
	}
}
