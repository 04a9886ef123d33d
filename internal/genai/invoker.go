package genai

import (
	"context"
	"time"

	"senai-coach-api/pkg/logger"
	"senai-coach-api/pkg/metrics"
)

// Format 期望的输出格式
type Format string

const (
	// FormatText 纯文本输出
	FormatText Format = "text"
	// FormatJSON 输出应为 JSON，结果会去围栏后解析
	FormatJSON Format = "json"
)

// GenerationRequest 一次逻辑生成请求，按调用构造，不可变
type GenerationRequest struct {
	// Prompt 提示词
	Prompt string
	// PrimaryModel 首选模型
	PrimaryModel string
	// FallbackModel 限流时的备用模型；为空表示不回退
	FallbackModel string
	// Format 期望输出格式
	Format Format
}

// GenerationResult 生成结果。Parsed 仅在 Format 为 JSON 且解析成功时非 nil，
// 且总是由 RawText 经去围栏 + JSON 解析确定性导出；RawText 提取后不再变更。
type GenerationResult struct {
	// RawText 归一化后的纯文本
	RawText string
	// Parsed 解析出的结构化值
	Parsed any
	// Model 实际提供本次响应的模型
	Model string
	// UsedFallback 是否由备用模型提供响应
	UsedFallback bool
}

// Backend 生成式文本后端。传输细节（HTTP/RPC）由实现决定。
type Backend interface {
	// Invoke 以指定模型调用后端，返回原始响应信封
	Invoke(ctx context.Context, model string, prompt string) (ResponseEnvelope, error)
}

// SleepFunc 等待函数，必须尊重 ctx 取消
type SleepFunc func(ctx context.Context, d time.Duration) error

// Invoker 在首选与备用模型间编排一次逻辑生成请求。
// 策略为单次回退：主调用被限流时等待服务端建议的时长后
// 恰好调用一次备用模型，不做指数退避循环。
// 每次请求至多两次后端调用。
type Invoker struct {
	backend Backend
	sleep   SleepFunc
}

// Option Invoker 构造选项
type Option func(*Invoker)

// WithSleep 替换等待实现（测试或自定义调度用）
func WithSleep(fn SleepFunc) Option {
	return func(iv *Invoker) {
		iv.sleep = fn
	}
}

// NewInvoker 创建调用编排器。
// backend 由调用方构造并持有生命周期，进程内构造一次即可；
// Invoker 自身不含请求间共享的可变状态，可被并发使用。
func NewInvoker(backend Backend, opts ...Option) *Invoker {
	iv := &Invoker{
		backend: backend,
		sleep:   sleepWithContext,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Generate 执行一次逻辑生成请求：
// 主模型调用 -> 非限流错误直接上抛 -> 限流时等待建议时长 ->
// 备用模型调用一次 -> 提取文本 -> 按需解析 JSON。
// 备用调用失败时上抛第二个错误；需要原始限流原因的调用方
// 须在回退前自行捕获。
func (iv *Invoker) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	model := req.PrimaryModel
	usedFallback := false

	env, err := iv.invokeOnce(ctx, req.PrimaryModel, req.Prompt)
	if err != nil {
		info := ClassifyRateLimit(err)
		if !info.IsRateLimited || req.FallbackModel == "" {
			return nil, err
		}

		logger.Warn(ctx, "primary model rate limited, falling back",
			"primary", req.PrimaryModel,
			"fallback", req.FallbackModel,
			"retry_after_ms", info.RetryAfter.Milliseconds(),
		)
		metrics.ModelFallbackTotal.WithLabelValues(req.PrimaryModel, req.FallbackModel).Inc()

		if info.HasRetryAfter && info.RetryAfter > 0 {
			if serr := iv.sleep(ctx, info.RetryAfter); serr != nil {
				return nil, serr
			}
		}

		env, err = iv.invokeOnce(ctx, req.FallbackModel, req.Prompt)
		if err != nil {
			return nil, err
		}
		model = req.FallbackModel
		usedFallback = true
	}

	text, err := ExtractText(env)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{
		RawText:      text,
		Model:        model,
		UsedFallback: usedFallback,
	}
	if req.Format == FormatJSON {
		parsed, err := ExtractJSON(text)
		if err != nil {
			return nil, err
		}
		result.Parsed = parsed
	}
	return result, nil
}

// invokeOnce 单次后端调用，记录时长与结果指标
func (iv *Invoker) invokeOnce(ctx context.Context, model, prompt string) (ResponseEnvelope, error) {
	start := time.Now()
	env, err := iv.backend.Invoke(ctx, model, prompt)
	metrics.ModelCallDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ModelCallTotal.WithLabelValues(model, status).Inc()
	return env, err
}

// sleepWithContext 可被取消的等待。等待时长是数据而非阻塞原语，
// 只阻塞当前请求，不影响其它并发请求。
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
