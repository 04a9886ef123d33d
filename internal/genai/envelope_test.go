package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		env     ResponseEnvelope
		want    string
		wantErr bool
	}{
		{
			name: "direct text field",
			env:  ResponseEnvelope{"text": "hello"},
			want: "hello",
		},
		{
			name: "nested response.text",
			env: ResponseEnvelope{
				"response": map[string]any{"text": "nested"},
			},
			want: "nested",
		},
		{
			name: "nested candidate parts",
			env: ResponseEnvelope{
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
			},
			want: "Hello, world!",
		},
		{
			name: "part without text treated as empty",
			env: ResponseEnvelope{
				"response": map[string]any{
					"candidates": []any{
						map[string]any{
							"content": map[string]any{
								"parts": []any{
									map[string]any{"text": "a"},
									map[string]any{"thought": true},
									map[string]any{"text": "b"},
								},
							},
						},
					},
				},
			},
			want: "ab",
		},
		{
			name: "top-level candidates from rest body",
			env: ResponseEnvelope{
				"candidates": []any{
					map[string]any{
						"content": map[string]any{
							"parts": []any{
								map[string]any{"text": "rest"},
							},
						},
					},
				},
			},
			want: "rest",
		},
		{
			name: "direct text wins over nested",
			env: ResponseEnvelope{
				"text":     "direct",
				"response": map[string]any{"text": "nested"},
			},
			want: "direct",
		},
		{
			name:    "unknown shape",
			env:     ResponseEnvelope{"usage": map[string]any{"tokens": float64(12)}},
			wantErr: true,
		},
		{
			name:    "text field of wrong type",
			env:     ResponseEnvelope{"text": float64(42)},
			wantErr: true,
		},
		{
			name:    "empty candidates list",
			env:     ResponseEnvelope{"response": map[string]any{"candidates": []any{}}},
			wantErr: true,
		},
		{
			name:    "nil envelope",
			env:     nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.env)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsMalformedResponse(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTextMalformedCarriesEnvelope(t *testing.T) {
	env := ResponseEnvelope{"weird": "shape"}
	_, err := ExtractText(env)
	require.Error(t, err)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, env, malformed.Envelope)
}
