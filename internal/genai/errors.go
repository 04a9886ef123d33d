// Package genai 提供对生成式文本后端的弹性调用与响应归一化
package genai

import (
	"errors"
	"fmt"
)

// BackendError 后端调用错误，携带分类所需的状态码与消息
type BackendError struct {
	// Status HTTP 状态码，未知时为 0
	Status int
	// Message 后端返回的错误内容，可能是纯文本或 JSON 字符串
	Message string
}

// Error 实现 error 接口
func (e *BackendError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// MalformedResponseError 后端返回了无法识别的响应形态。
// 形态不会因重试而改变，因此该错误是终态的。
type MalformedResponseError struct {
	// Envelope 原始响应，用于诊断
	Envelope ResponseEnvelope
}

// Error 实现 error 接口
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", map[string]any(e.Envelope))
}

// InvalidJSONError 文本提取成功但去除围栏后不是合法 JSON。
// 不做修复重试，直接上抛。
type InvalidJSONError struct {
	// Text 去除围栏并修剪后的文本
	Text string
	// Err 底层解析错误
	Err error
}

// Error 实现 error 接口
func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid json in model output: %v", e.Err)
}

// Unwrap 返回底层解析错误
func (e *InvalidJSONError) Unwrap() error {
	return e.Err
}

// IsMalformedResponse 检查是否为响应形态错误
func IsMalformedResponse(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsInvalidJSON 检查是否为 JSON 解析错误
func IsInvalidJSON(err error) bool {
	var target *InvalidJSONError
	return errors.As(err, &target)
}

// AsBackendError 提取底层的 BackendError；非后端错误返回 nil
func AsBackendError(err error) *BackendError {
	var target *BackendError
	if errors.As(err, &target) {
		return target
	}
	return nil
}
