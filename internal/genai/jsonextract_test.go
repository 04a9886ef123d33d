package genai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
		{"markdown tag", "```markdown\n# Title\n```", "# Title"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

// 对任意 JSON 文本，包进 ```json 围栏后提取应与直接解析结果一致
func TestExtractJSONFenceRoundTrip(t *testing.T) {
	inputs := []string{
		`{"growthRate":4.2,"topSkills":["go","sql"]}`,
		`[1,2,3]`,
		`{"nested":{"deep":{"value":true}}}`,
		`"just a string"`,
	}

	for _, in := range inputs {
		var direct any
		require.NoError(t, json.Unmarshal([]byte(in), &direct))

		fenced := "```json\n" + in + "\n```"
		got, err := ExtractJSON(fenced)
		require.NoError(t, err)
		assert.Equal(t, direct, got)
	}
}

func TestExtractJSONInvalid(t *testing.T) {
	tests := []string{
		"not json at all",
		"```json\n{broken\n```",
		"```\n\n```",
	}

	for _, in := range tests {
		got, err := ExtractJSON(in)
		require.Error(t, err)
		assert.Nil(t, got, "no partial value on failure")
		assert.True(t, IsInvalidJSON(err))
	}
}

func TestDecodeJSON(t *testing.T) {
	type outlook struct {
		GrowthRate float64  `json:"growthRate"`
		TopSkills  []string `json:"topSkills"`
	}

	var v outlook
	err := DecodeJSON("```json\n{\"growthRate\":3.1,\"topSkills\":[\"python\"]}\n```", &v)
	require.NoError(t, err)
	assert.Equal(t, 3.1, v.GrowthRate)
	assert.Equal(t, []string{"python"}, v.TopSkills)

	err = DecodeJSON("```json\nnope\n```", &v)
	require.Error(t, err)

	var invalid *InvalidJSONError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "nope", invalid.Text)
}
