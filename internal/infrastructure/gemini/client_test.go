package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senai-coach-api/internal/config"
	"senai-coach-api/internal/genai"
)

func newTestClient(url string) *Client {
	return NewClient(&config.GeminiConfig{
		APIKey:          "test-key",
		BaseURL:         url,
		Timeout:         5 * time.Second,
		Temperature:     0.7,
		MaxOutputTokens: 1024,
	})
}

func TestInvokeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		contents := req["contents"].([]any)
		require.Len(t, contents, 1)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"pong"}]}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	env, err := client.Invoke(context.Background(), "gemini-2.5-flash", "ping")
	require.NoError(t, err)

	text, err := genai.ExtractText(env)
	require.NoError(t, err)
	assert.Equal(t, "pong", text)
}

func TestInvokeErrorStatusMapsToBackendError(t *testing.T) {
	body := `{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"1.5s"}]}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Invoke(context.Background(), "gemini-2.5-flash", "ping")
	require.Error(t, err)

	be := genai.AsBackendError(err)
	require.NotNil(t, be)
	assert.Equal(t, http.StatusTooManyRequests, be.Status)
	assert.Equal(t, body, be.Message)

	// 错误体应可直接用于限流分类
	info := genai.ClassifyRateLimit(err)
	assert.True(t, info.IsRateLimited)
	assert.Equal(t, 1500*time.Millisecond, info.RetryAfter)
}

func TestInvokeConnectionFailure(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.Invoke(context.Background(), "gemini-2.5-flash", "ping")
	require.Error(t, err)
	require.NotNil(t, genai.AsBackendError(err))
	assert.False(t, genai.ClassifyRateLimit(err).IsRateLimited)
}
