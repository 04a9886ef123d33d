package genai

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRateLimitByStatus(t *testing.T) {
	// 429 状态码无论消息内容如何都判定为限流
	info := ClassifyRateLimit(&BackendError{Status: 429, Message: "anything at all"})
	assert.True(t, info.IsRateLimited)
	assert.False(t, info.HasRetryAfter)
}

func TestClassifyRateLimitByMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "resource exhausted substring",
			err:  &BackendError{Status: 400, Message: "error: RESOURCE_EXHAUSTED for project"},
			want: true,
		},
		{
			name: "quota exceeded substring",
			err:  &BackendError{Status: 403, Message: "Quota exceeded for quota metric"},
			want: true,
		},
		{
			name: "json body with code 429",
			err:  &BackendError{Status: 0, Message: `{"error":{"code":429,"message":"Rate limit"}}`},
			want: true,
		},
		{
			name: "json body with status RESOURCE_EXHAUSTED",
			err:  &BackendError{Status: 0, Message: `{"error":{"code":400,"status":"RESOURCE_EXHAUSTED"}}`},
			want: true,
		},
		{
			name: "plain server error",
			err:  &BackendError{Status: 500, Message: "internal error"},
			want: false,
		},
		{
			name: "non-backend error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "wrapped backend error",
			err:  wrapErr(&BackendError{Status: 429, Message: "x"}),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRateLimit(tt.err).IsRateLimited)
		})
	}
}

func TestClassifyRateLimitRetryDelay(t *testing.T) {
	msg := `{
		"error": {
			"code": 429,
			"message": "Rate limit exceeded",
			"details": [
				{"@type": "type.googleapis.com/google.rpc.Help"},
				{
					"@type": "type.googleapis.com/google.rpc.RetryInfo",
					"retryDelay": "3.5s"
				}
			]
		}
	}`

	info := ClassifyRateLimit(&BackendError{Status: 429, Message: msg})
	assert.True(t, info.IsRateLimited)
	assert.True(t, info.HasRetryAfter)
	assert.Equal(t, 3500*time.Millisecond, info.RetryAfter)
}

func TestClassifyRateLimitDelayRoundsUp(t *testing.T) {
	msg := `{"error":{"code":429,"details":[{"@type":"RetryInfo","retryDelay":"3.9575250s"}]}}`

	info := ClassifyRateLimit(&BackendError{Status: 429, Message: msg})
	assert.True(t, info.HasRetryAfter)
	// 3957.525ms 向上取整到 3958ms
	assert.Equal(t, 3958*time.Millisecond, info.RetryAfter)
}

func TestClassifyRateLimitNoParseableDelay(t *testing.T) {
	tests := []string{
		"plain RESOURCE_EXHAUSTED text without json",
		`{"error":{"code":429,"details":[{"@type":"RetryInfo","retryDelay":"soon"}]}}`,
		`{"error":{"code":429,"details":[]}}`,
	}

	for _, msg := range tests {
		info := ClassifyRateLimit(&BackendError{Status: 429, Message: msg})
		assert.True(t, info.IsRateLimited)
		assert.False(t, info.HasRetryAfter, "message: %s", msg)
	}
}

func TestClassifyRateLimitPrefixedJSONBody(t *testing.T) {
	// googleapi 风格：JSON 前带文本前缀
	msg := `googleapi: Error 429: {"error":{"code":429,"details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"2s"}]}}`

	info := ClassifyRateLimit(&BackendError{Status: 429, Message: msg})
	assert.True(t, info.IsRateLimited)
	assert.Equal(t, 2*time.Second, info.RetryAfter)
}

func TestClassifyRateLimitNilError(t *testing.T) {
	assert.False(t, ClassifyRateLimit(nil).IsRateLimited)
}

func wrapErr(err error) error {
	return &wrapped{err: err}
}

type wrapped struct {
	err error
}

func (w *wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }
