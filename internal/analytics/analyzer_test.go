package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
	schema   *genai.Schema
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	s.calls++
	s.prompt = prompt
	s.schema = schema
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func sampleTurns() []Turn {
	return []Turn{
		{Role: RoleUser, Text: "I have been feeling anxious about my job"},
		{Role: RoleAssistant, Text: "That sounds hard. What is worrying you most?"},
		{Role: RoleUser, Text: "Deadlines mostly. I barely sleep."},
	}
}

// validModelResponse returns a schema-valid JSON document the way the model
// would produce it, with identity fields the analyzer must overwrite.
func validModelResponse(t *testing.T) string {
	t.Helper()

	a := NewFallbackAssessor(MatchSubstring).Assess("model-invented-user", sampleTurns(), "model-invented-session")
	a.AssessmentConfidence = 0.9
	a.DataQuality = "Good - detailed conversation"

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	return string(raw)
}

func TestAnalyzeModelPath(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse(t)}
	a := NewAnalyzer(gen, testLogger())

	result := a.Analyze(context.Background(), "user-1", sampleTurns(), "session-1")

	require.NotNil(t, result)
	require.NoError(t, result.Validate())
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 0.9, result.AssessmentConfidence)

	// Identity and timestamp come from the caller, not the model output.
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "session-1", result.SessionID)
	assert.False(t, result.AssessmentTimestamp.IsZero())
}

func TestAnalyzePromptContainsConversation(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse(t)}
	a := NewAnalyzer(gen, testLogger())

	a.Analyze(context.Background(), "user-1", sampleTurns(), "")

	assert.Contains(t, gen.prompt, "feeling anxious about my job")
	assert.Contains(t, gen.prompt, "User:")
	assert.Contains(t, gen.prompt, "AI Assistant:")
	require.NotNil(t, gen.schema)
	assert.Equal(t, genai.TypeObject, gen.schema.Type)
}

func TestAnalyzeGeneratorErrorFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("deadline exceeded")}
	a := NewAnalyzer(gen, testLogger())

	result := a.Analyze(context.Background(), "user-1", sampleTurns(), "session-1")

	require.NotNil(t, result)
	require.NoError(t, result.Validate())
	assert.Equal(t, 0.3, result.AssessmentConfidence)
	assert.True(t, result.FollowUpNeeded)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "session-1", result.SessionID)
}

func TestAnalyzeMalformedJSONFallsBack(t *testing.T) {
	gen := &stubGenerator{response: "I am not JSON, but here is my assessment:"}
	a := NewAnalyzer(gen, testLogger())

	result := a.Analyze(context.Background(), "user-1", sampleTurns(), "")

	require.NoError(t, result.Validate())
	assert.Equal(t, 0.3, result.AssessmentConfidence)
}

func TestAnalyzeInvalidRecordFallsBack(t *testing.T) {
	var bad Assessment
	require.NoError(t, json.Unmarshal([]byte(validModelResponse(t)), &bad))
	bad.AnxietyLevel.Score = 42 // out of range
	raw, err := json.Marshal(&bad)
	require.NoError(t, err)

	gen := &stubGenerator{response: string(raw)}
	a := NewAnalyzer(gen, testLogger())

	result := a.Analyze(context.Background(), "user-1", sampleTurns(), "")

	require.NoError(t, result.Validate())
	assert.Equal(t, 0.3, result.AssessmentConfidence)
	assert.LessOrEqual(t, result.AnxietyLevel.Score, 10.0)
}

func TestAnalyzeNilGeneratorFallsBack(t *testing.T) {
	a := NewAnalyzer(nil, testLogger())

	result := a.Analyze(context.Background(), "user-1", sampleTurns(), "")

	require.NotNil(t, result)
	require.NoError(t, result.Validate())
	assert.Equal(t, 0.3, result.AssessmentConfidence)
}

func TestAnalyzeEmptyConversationSkipsModel(t *testing.T) {
	gen := &stubGenerator{response: validModelResponse(t)}
	a := NewAnalyzer(gen, testLogger())

	result := a.Analyze(context.Background(), "user-1", nil, "")

	require.NoError(t, result.Validate())
	assert.Equal(t, 0, gen.calls)
	assert.Equal(t, 0.3, result.AssessmentConfidence)
}
