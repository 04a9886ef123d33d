package genai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// openFenceRe 匹配开头的代码围栏：三个反引号 + 可选语言标签 + 可选换行
var openFenceRe = regexp.MustCompile("^```[a-zA-Z0-9]*\n?")

// StripFences 去除模型输出首尾的 Markdown 代码围栏并修剪空白。
// 语言标签大小写敏感，按原样丢弃。
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = openFenceRe.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSON 从可能带围栏的文本中恢复 JSON 值。
// 解析失败返回 InvalidJSONError，不做任何修复重试。
func ExtractJSON(text string) (any, error) {
	cleaned := StripFences(text)

	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, &InvalidJSONError{Text: cleaned, Err: err}
	}
	return v, nil
}

// DecodeJSON 去围栏后将 JSON 解析到调用方提供的结构。
// 这里只做语法解析，不做 schema 校验。
func DecodeJSON(text string, target any) error {
	cleaned := StripFences(text)

	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &InvalidJSONError{Text: cleaned, Err: err}
	}
	return nil
}
