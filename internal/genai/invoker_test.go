package genai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend 按调用次序返回预置结果
type fakeBackend struct {
	calls   []string
	results []fakeResult
}

type fakeResult struct {
	env ResponseEnvelope
	err error
}

func (f *fakeBackend) Invoke(_ context.Context, model string, _ string) (ResponseEnvelope, error) {
	idx := len(f.calls)
	f.calls = append(f.calls, model)
	if idx >= len(f.results) {
		return nil, errors.New("unexpected invocation")
	}
	r := f.results[idx]
	return r.env, r.err
}

func rateLimitErr(delay string) *BackendError {
	msg := `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"` + delay + `"}]}}`
	return &BackendError{Status: 429, Message: msg}
}

// 场景 A：主模型 429 且建议等待 2s，备用模型返回直接文本
func TestGenerateFallbackAfterRateLimit(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{err: rateLimitErr("2s")},
			{env: ResponseEnvelope{"text": "RESULT"}},
		},
	}

	var slept []time.Duration
	iv := NewInvoker(backend, WithSleep(func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}))

	result, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:        "prompt",
		PrimaryModel:  "primary-model",
		FallbackModel: "fallback-model",
		Format:        FormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "RESULT", result.RawText)
	assert.Nil(t, result.Parsed)

	assert.Equal(t, []string{"primary-model", "fallback-model"}, backend.calls)
	require.Len(t, slept, 1)
	assert.Equal(t, 2*time.Second, slept[0])
}

// 场景 B：非限流错误直接上抛，绝不调用备用模型
func TestGenerateFatalErrorNoFallback(t *testing.T) {
	serverErr := &BackendError{Status: 500, Message: "internal error"}
	backend := &fakeBackend{
		results: []fakeResult{{err: serverErr}},
	}

	iv := NewInvoker(backend)
	_, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:        "prompt",
		PrimaryModel:  "primary-model",
		FallbackModel: "fallback-model",
	})
	require.Error(t, err)
	assert.Same(t, serverErr, AsBackendError(err))
	assert.Equal(t, []string{"primary-model"}, backend.calls)
}

// 场景 C：主调用成功，嵌套 parts 两个片段拼接
func TestGenerateNestedPartsEnvelope(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{env: ResponseEnvelope{
				"response": map[string]any{
					"candidates": []any{
						map[string]any{
							"content": map[string]any{
								"parts": []any{
									map[string]any{"text": "Hello, "},
									map[string]any{"text": "world!"},
								},
							},
						},
					},
				},
			}},
		},
	}

	iv := NewInvoker(backend)
	result, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:       "prompt",
		PrimaryModel: "primary-model",
		Format:       FormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", result.RawText)
	assert.Equal(t, []string{"primary-model"}, backend.calls)
}

// 回退后第二次失败上抛第二个错误，不再继续重试
func TestGenerateFallbackFailurePropagatesSecondError(t *testing.T) {
	secondErr := &BackendError{Status: 503, Message: "overloaded"}
	backend := &fakeBackend{
		results: []fakeResult{
			{err: rateLimitErr("0.1s")},
			{err: secondErr},
		},
	}

	iv := NewInvoker(backend, WithSleep(func(context.Context, time.Duration) error { return nil }))
	_, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:        "prompt",
		PrimaryModel:  "primary-model",
		FallbackModel: "fallback-model",
	})
	require.Error(t, err)
	assert.Same(t, secondErr, AsBackendError(err))
	assert.Len(t, backend.calls, 2)
}

// 限流但无建议等待时长时立即回退
func TestGenerateFallbackWithoutDelayProceedsImmediately(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{err: &BackendError{Status: 429, Message: "too many requests"}},
			{env: ResponseEnvelope{"text": "ok"}},
		},
	}

	slept := false
	iv := NewInvoker(backend, WithSleep(func(context.Context, time.Duration) error {
		slept = true
		return nil
	}))

	result, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:        "prompt",
		PrimaryModel:  "primary-model",
		FallbackModel: "fallback-model",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result.RawText)
	assert.False(t, slept, "no suggested delay means no wait")
}

func TestGenerateJSONFormat(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{env: ResponseEnvelope{"text": "```json\n{\"level\":\"High\"}\n```"}},
		},
	}

	iv := NewInvoker(backend)
	result, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:       "prompt",
		PrimaryModel: "primary-model",
		Format:       FormatJSON,
	})
	require.NoError(t, err)
	// RawText 保留原文，Parsed 由其确定性导出
	assert.Equal(t, "```json\n{\"level\":\"High\"}\n```", result.RawText)
	assert.Equal(t, map[string]any{"level": "High"}, result.Parsed)
}

func TestGenerateJSONFormatInvalidOutput(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{env: ResponseEnvelope{"text": "I cannot answer in JSON, sorry"}},
		},
	}

	iv := NewInvoker(backend)
	result, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:       "prompt",
		PrimaryModel: "primary-model",
		Format:       FormatJSON,
	})
	require.Error(t, err)
	assert.Nil(t, result, "failure yields no partial result")
	assert.True(t, IsInvalidJSON(err))
}

func TestGenerateMalformedEnvelope(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{env: ResponseEnvelope{"usage": map[string]any{}}},
		},
	}

	iv := NewInvoker(backend)
	_, err := iv.Generate(context.Background(), GenerationRequest{
		Prompt:       "prompt",
		PrimaryModel: "primary-model",
	})
	require.Error(t, err)
	assert.True(t, IsMalformedResponse(err))
	// 形态错误不触发回退
	assert.Equal(t, []string{"primary-model"}, backend.calls)
}

// 默认等待实现必须尊重 context 取消
func TestGenerateSleepCancellable(t *testing.T) {
	backend := &fakeBackend{
		results: []fakeResult{
			{err: rateLimitErr("30s")},
		},
	}

	iv := NewInvoker(backend)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := iv.Generate(ctx, GenerationRequest{
			Prompt:        "prompt",
			PrimaryModel:  "primary-model",
			FallbackModel: "fallback-model",
		})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("generate did not return after cancellation")
	}

	// 取消发生在等待期间，备用模型不应被调用
	assert.Equal(t, []string{"primary-model"}, backend.calls)
}
