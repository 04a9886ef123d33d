package genai

// ResponseEnvelope 后端返回的原始 JSON 树。
// 不是领域实体，只是一个解析目标：不同 SDK/接口版本会返回
// 不同形态，ExtractText 按固定优先级逐一尝试。
type ResponseEnvelope map[string]any

// ExtractText 将响应信封归一化为纯文本。
// 按优先级匹配，先命中者生效：
//  1. 顶层 text 字段
//  2. response.text 字段
//  3. response.candidates[0].content.parts 列表逐段拼接
//  4. 顶层 candidates[0].content.parts（REST 原始响应体）
//
// 全部不匹配时返回 MalformedResponseError，携带原始信封。
func ExtractText(env ResponseEnvelope) (string, error) {
	// 形态 1：顶层 text
	if text, ok := env["text"].(string); ok {
		return text, nil
	}

	// 形态 2/3：嵌套 response 对象
	if resp, ok := env["response"].(map[string]any); ok {
		if text, ok := resp["text"].(string); ok {
			return text, nil
		}
		if text, ok := textFromCandidates(resp["candidates"]); ok {
			return text, nil
		}
	}

	// 形态 4：REST 响应体的顶层 candidates
	if text, ok := textFromCandidates(env["candidates"]); ok {
		return text, nil
	}

	return "", &MalformedResponseError{Envelope: env}
}

// textFromCandidates 从 candidates[0].content.parts 拼接文本。
// parts 中缺失 text 字段的片段按空串处理。
func textFromCandidates(v any) (string, bool) {
	candidates, ok := v.([]any)
	if !ok || len(candidates) == 0 {
		return "", false
	}
	first, ok := candidates[0].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := first["content"].(map[string]any)
	if !ok {
		return "", false
	}
	parts, ok := content["parts"].([]any)
	if !ok {
		return "", false
	}

	var sb []byte
	for _, p := range parts {
		part, ok := p.(map[string]any)
		if !ok {
			continue
		}
		if text, ok := part["text"].(string); ok {
			sb = append(sb, text...)
		}
	}
	return string(sb), true
}
