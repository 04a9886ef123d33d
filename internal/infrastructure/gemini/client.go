// Package gemini 提供 Generative Language API 的 HTTP 客户端
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"senai-coach-api/internal/config"
	"senai-coach-api/internal/genai"
)

var tracer = otel.Tracer("gemini")

// Client Generative Language API 客户端。
// 进程内构造一次，作为 genai.Backend 传给 Invoker。
type Client struct {
	httpClient *http.Client
	config     *config.GeminiConfig
}

// NewClient 创建后端客户端
func NewClient(cfg *config.GeminiConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}
}

// generateRequest generateContent 请求体
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// Invoke 实现 genai.Backend：以指定模型调用 generateContent，
// 返回未加工的响应体供上层归一化。
func (c *Client) Invoke(ctx context.Context, model string, prompt string) (genai.ResponseEnvelope, error) {
	ctx, span := tracer.Start(ctx, "gemini.Invoke")
	span.SetAttributes(attribute.String("gemini.model", model))
	defer span.End()

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.config.Temperature,
			MaxOutputTokens: c.config.MaxOutputTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, &genai.BackendError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, &genai.BackendError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetAttributes(attribute.Int("gemini.status", resp.StatusCode))
		return nil, &genai.BackendError{
			Status:  resp.StatusCode,
			Message: string(body),
		}
	}

	var envelope genai.ResponseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &genai.BackendError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("undecodable response body: %v", err),
		}
	}
	return envelope, nil
}
