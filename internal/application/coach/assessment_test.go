package coach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"senai-coach-api/internal/domain/entity"
	"senai-coach-api/internal/genai"
	apperrors "senai-coach-api/pkg/errors"
)

func onboardedUser() *entity.User {
	return &entity.User{
		ID:         "u-1",
		Email:      "dev@example.com",
		Industry:   "tech",
		Experience: 5,
		Skills:     []string{"Go", "PostgreSQL"},
	}
}

func TestGenerateQuiz(t *testing.T) {
	backend := &stubBackend{text: "```json\n" +
		`{"questions": [{"question": "What does a goroutine run on?", "options": ["OS thread", "Green thread scheduled by the runtime", "Process", "Fiber"], "correctAnswer": "Green thread scheduled by the runtime", "explanation": "Goroutines are multiplexed onto OS threads by the scheduler."}]}` +
		"\n```"}
	gen := NewAssessmentGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil)

	questions, err := gen.GenerateQuiz(context.Background(), onboardedUser())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "What does a goroutine run on?", questions[0].Question)
	assert.Len(t, questions[0].Options, 4)

	require.Len(t, backend.prompts, 1)
	assert.Contains(t, backend.prompts[0], "tech professional")
	assert.Contains(t, backend.prompts[0], "Go, PostgreSQL")
}

func TestGenerateQuizRequiresOnboarding(t *testing.T) {
	gen := NewAssessmentGenerator(genai.NewInvoker(&stubBackend{}), testGeminiConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), &entity.User{ID: "u-2", Email: "new@example.com"})
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeProfileIncomplete, appErr.Code)
}

func TestGenerateQuizEmptyQuestions(t *testing.T) {
	backend := &stubBackend{text: `{"questions": []}`}
	gen := NewAssessmentGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil)

	_, err := gen.GenerateQuiz(context.Background(), onboardedUser())
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeInvalidAIOutput, appErr.Code)
}

func TestImprovementTip(t *testing.T) {
	backend := &stubBackend{text: "Focus on practicing concurrency patterns; you are close!"}
	gen := NewAssessmentGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil)

	wrong := []entity.QuestionResult{
		{Question: "What is a channel?", CorrectAnswer: "A typed conduit", UserAnswer: "A mutex"},
	}
	tip, err := gen.ImprovementTip(context.Background(), onboardedUser(), wrong)
	require.NoError(t, err)
	assert.Equal(t, "Focus on practicing concurrency patterns; you are close!", tip)

	require.Len(t, backend.prompts, 1)
	assert.Contains(t, backend.prompts[0], "What is a channel?")
}

func TestImprovementTipNoWrongAnswers(t *testing.T) {
	backend := &stubBackend{}
	gen := NewAssessmentGenerator(genai.NewInvoker(backend), testGeminiConfig(), nil)

	tip, err := gen.ImprovementTip(context.Background(), onboardedUser(), nil)
	require.NoError(t, err)
	assert.Empty(t, tip)
	assert.Empty(t, backend.prompts)
}
