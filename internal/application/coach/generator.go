package coach

import (
	"context"
	"time"

	"senai-coach-api/internal/application/quota"
	"senai-coach-api/internal/config"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/genai"
	apperrors "senai-coach-api/pkg/errors"
	"senai-coach-api/pkg/metrics"
)

// core 各生成服务共用的调用骨架：装配请求、记录指标与用量、
// 把底层错误归一为应用错误。
type core struct {
	invoker  *genai.Invoker
	cfg      config.GeminiConfig
	recorder *quota.UsageRecorder
}

func newCore(invoker *genai.Invoker, cfg config.GeminiConfig, recorder *quota.UsageRecorder) core {
	return core{
		invoker:  invoker,
		cfg:      cfg,
		recorder: recorder,
	}
}

// generate 执行一次生成调用。userID 为空时（后台任务）不记用量。
func (c core) generate(ctx context.Context, userID string, kind entity.GenerationKind, prompt string, format genai.Format) (*genai.GenerationResult, error) {
	start := time.Now()
	result, err := c.invoker.Generate(ctx, genai.GenerationRequest{
		Prompt:        prompt,
		PrimaryModel:  c.cfg.PrimaryModel,
		FallbackModel: c.cfg.FallbackModel,
		Format:        format,
	})
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GenerationTotal.WithLabelValues(string(kind), "error").Inc()
		return nil, mapGenError(err)
	}
	metrics.GenerationTotal.WithLabelValues(string(kind), "success").Inc()

	if userID != "" && c.recorder != nil {
		c.recorder.Record(ctx, quota.UsageInput{
			UserID:       userID,
			Kind:         kind,
			Model:        result.Model,
			UsedFallback: result.UsedFallback,
			DurationMs:   int(elapsed.Milliseconds()),
		})
	}
	return result, nil
}

// mapGenError 把生成核心的错误归一为应用错误
func mapGenError(err error) error {
	switch {
	case genai.IsInvalidJSON(err), genai.IsMalformedResponse(err):
		return apperrors.Wrap(err, apperrors.CodeInvalidAIOutput, "ai output could not be parsed")
	default:
		if info := genai.ClassifyRateLimit(err); info.IsRateLimited {
			return apperrors.Wrap(err, apperrors.CodeAIRateLimited, "ai provider rate limited")
		}
		return apperrors.Wrap(err, apperrors.CodeGenerationFailed, "ai generation failed")
	}
}
