package genai

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// RateLimitInfo 限流分类结果
type RateLimitInfo struct {
	// IsRateLimited 是否为瞬时配额/限流错误
	IsRateLimited bool
	// RetryAfter 服务端建议的等待时长，HasRetryAfter 为 false 时无意义
	RetryAfter time.Duration
	// HasRetryAfter 是否解析出建议等待时长
	HasRetryAfter bool
}

// googleErrorBody Google API 风格的错误响应体
type googleErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
		Details []struct {
			Type       string `json:"@type"`
			RetryDelay string `json:"retryDelay"`
		} `json:"details"`
	} `json:"error"`
}

// ClassifyRateLimit 判定后端错误是否为限流错误并提取建议等待时长。
// 纯函数，无副作用。匹配规则与真实后端的错误格式兼容，不可收紧：
//   - 状态码 429
//   - 消息含 "RESOURCE_EXHAUSTED" 或 "Quota exceeded"
//   - 消息本身是 JSON 且 error.code==429 或 error.status=="RESOURCE_EXHAUSTED"
func ClassifyRateLimit(err error) RateLimitInfo {
	if err == nil {
		return RateLimitInfo{}
	}

	status := 0
	msg := err.Error()
	if be := AsBackendError(err); be != nil {
		status = be.Status
		msg = be.Message
	}

	info := RateLimitInfo{}

	if status == 429 ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "Quota exceeded") {
		info.IsRateLimited = true
	}

	// 消息可能是完整的 JSON 错误体
	var body googleErrorBody
	if jerr := json.Unmarshal([]byte(extractJSONBody(msg)), &body); jerr == nil {
		if body.Error.Code == 429 || body.Error.Status == "RESOURCE_EXHAUSTED" {
			info.IsRateLimited = true
		}
		for _, d := range body.Error.Details {
			if !strings.Contains(d.Type, "RetryInfo") || d.RetryDelay == "" {
				continue
			}
			if wait, ok := parseRetryDelay(d.RetryDelay); ok {
				info.RetryAfter = wait
				info.HasRetryAfter = true
				break
			}
		}
	}

	return info
}

// extractJSONBody 从消息中截取 JSON 对象部分。
// 后端有时会在 JSON 前加 "googleapi: Error 429:" 之类的前缀。
func extractJSONBody(msg string) string {
	start := strings.Index(msg, "{")
	end := strings.LastIndex(msg, "}")
	if start >= 0 && end > start {
		return msg[start : end+1]
	}
	return msg
}

// parseRetryDelay 解析 "42.85s" 形式的延迟，毫秒向上取整
func parseRetryDelay(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "s") {
		return 0, false
	}
	secs, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	ms := int64(math.Ceil(secs * 1000))
	return time.Duration(ms) * time.Millisecond, true
}
