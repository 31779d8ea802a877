package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/generative-ai-go/genai"
)

func validAssessment() *Assessment {
	return NewFallbackAssessor(MatchSubstring).Assess("user-1", sampleTurns(), "session-1")
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	assert.NoError(t, validAssessment().Validate())
}

func TestValidateRejectsScoreOutOfRange(t *testing.T) {
	a := validAssessment()
	a.AnxietyLevel.Score = 12
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.StressLevel.Score = -1
	assert.Error(t, a.Validate())
}

func TestValidateRejectsBadSeverity(t *testing.T) {
	a := validAssessment()
	a.DepressionIndicators.Severity = "catastrophic"
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.RiskLevel = ""
	assert.Error(t, a.Validate())
}

func TestValidateRejectsConfidenceOutOfRange(t *testing.T) {
	a := validAssessment()
	a.SelfEsteem.Confidence = 1.5
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.AssessmentConfidence = -0.1
	assert.Error(t, a.Validate())
}

func TestValidateRejectsMissingFields(t *testing.T) {
	a := validAssessment()
	a.MotivationLevel.Name = ""
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.EmotionalState.DominantEmotion = ""
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.DataQuality = ""
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.SleepQuality.Indicators = nil
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.Strengths = nil
	assert.Error(t, a.Validate())
}

func TestValidateRejectsMissingSubAssessmentLists(t *testing.T) {
	a := validAssessment()
	a.CognitivePatterns.CognitiveDistortions = nil
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.CognitivePatterns.ThoughtPatterns = nil
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.CopingMechanisms.HealthyCopingStrategies = nil
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.CopingMechanisms.UnhealthyCopingPatterns = nil
	assert.Error(t, a.Validate())
}

func TestValidateRejectsBadSubScores(t *testing.T) {
	a := validAssessment()
	a.EmotionalState.EmotionIntensity = 11
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.CognitivePatterns.ThoughtPatterns["rumination"] = 99
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.SocialConnections.SocialIsolationLevel = -2
	assert.Error(t, a.Validate())

	a = validAssessment()
	a.CopingMechanisms.ResilienceLevel = 10.5
	assert.Error(t, a.Validate())
}

func TestValidSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityVeryLow, SeverityLow, SeverityModerate, SeverityHigh, SeverityVeryHigh} {
		assert.True(t, ValidSeverity(s))
	}
	assert.False(t, ValidSeverity("medium"))
	assert.False(t, ValidSeverity(""))
}

func TestResponseSchemaShape(t *testing.T) {
	s := ResponseSchema()
	require.NotNil(t, s)
	assert.Equal(t, genai.TypeObject, s.Type)

	for _, key := range []string{
		"anxiety_level", "depression_indicators", "stress_level", "self_esteem",
		"emotional_regulation", "motivation_level", "sleep_quality",
		"emotional_state", "cognitive_patterns", "social_connections", "coping_mechanisms",
		"overall_mental_health_score", "risk_level", "assessment_confidence",
		"data_quality", "follow_up_needed",
	} {
		assert.Contains(t, s.Properties, key)
		assert.Contains(t, s.Required, key)
	}

	cognitive := s.Properties["cognitive_patterns"]
	require.NotNil(t, cognitive)
	for _, key := range []string{"cognitive_distortions", "thought_patterns", "problem_solving_ability", "self_awareness"} {
		assert.Contains(t, cognitive.Required, key)
	}

	// Identity fields are injected after generation, never requested from
	// the model.
	assert.NotContains(t, s.Properties, "user_id")
	assert.NotContains(t, s.Properties, "session_id")
	assert.NotContains(t, s.Properties, "assessment_timestamp")
}
