package coach

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senai-coach-api/internal/config"
	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/genai"
)

type stubBackend struct {
	text    string
	err     error
	prompts []string
}

func (b *stubBackend) Invoke(_ context.Context, _ string, prompt string) (genai.ResponseEnvelope, error) {
	b.prompts = append(b.prompts, prompt)
	if b.err != nil {
		return nil, b.err
	}
	return genai.ResponseEnvelope{"text": b.text}, nil
}

func testGeminiConfig() config.GeminiConfig {
	return config.GeminiConfig{
		PrimaryModel:  "gemini-2.5-flash",
		FallbackModel: "gemini-2.0-flash",
	}
}

func TestInsightGeneratorGenerate(t *testing.T) {
	backend := &stubBackend{text: "```json\n{\n" +
		`  "salaryRanges": [{"role": "Backend Engineer", "min": 90000, "max": 180000, "median": 130000, "location": "Remote"}],` + "\n" +
		`  "growthRate": 12.5,` + "\n" +
		`  "demandLevel": "high",` + "\n" +
		`  "topSkills": ["Go", "Kubernetes"],` + "\n" +
		`  "marketOutlook": "Positive",` + "\n" +
		`  "keyTrends": ["AI tooling"],` + "\n" +
		`  "recommendedSkills": ["System design"]` + "\n}\n```"}

	gen := NewInsightGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil, 7*24*time.Hour)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	insight, err := gen.Generate(context.Background(), "", "tech")
	require.NoError(t, err)

	assert.Equal(t, "tech", insight.Industry)
	assert.Equal(t, entity.DemandHigh, insight.DemandLevel)
	assert.Equal(t, entity.OutlookPositive, insight.MarketOutlook)
	assert.Equal(t, 12.5, insight.GrowthRate)
	require.Len(t, insight.SalaryRanges, 1)
	assert.Equal(t, "Backend Engineer", insight.SalaryRanges[0].Role)
	assert.Equal(t, fixed, insight.LastUpdated)
	assert.Equal(t, fixed.Add(7*24*time.Hour), insight.NextUpdate)

	require.Len(t, backend.prompts, 1)
	assert.Contains(t, backend.prompts[0], "tech industry")
}

func TestInsightGeneratorRejectsEmptyIndustry(t *testing.T) {
	gen := NewInsightGenerator(genai.NewInvoker(&stubBackend{}), testGeminiConfig(), nil, 0)

	_, err := gen.Generate(context.Background(), "", "   ")
	assert.Error(t, err)
}

func TestInsightGeneratorInvalidJSON(t *testing.T) {
	backend := &stubBackend{text: "sorry, I cannot help with that"}
	gen := NewInsightGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil, 0)

	_, err := gen.Generate(context.Background(), "", "finance")
	assert.Error(t, err)
}

func TestNormalizeDemandLevel(t *testing.T) {
	assert.Equal(t, entity.DemandHigh, normalizeDemandLevel(" HIGH "))
	assert.Equal(t, entity.DemandLow, normalizeDemandLevel("low"))
	assert.Equal(t, entity.DemandMedium, normalizeDemandLevel("unknown"))
}
