package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreParameterIndicatorHits(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	// Three distinct anxiety indicators: max(3, 7-3) = 4.
	score := f.scoreParameter(ParamAnxiety, "i worry and feel nervous, close to panic")
	assert.Equal(t, 4.0, score)
}

func TestScoreParameterFloor(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	// Five indicators would give 7-5 = 2, floored at 3.
	score := f.scoreParameter(ParamAnxiety, "worry nervous anxious panic fear")
	assert.Equal(t, 3.0, score)
}

func TestScoreParameterReverseHits(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	// Two reverse indicators, no indicators: min(7, 5+2) = 7.
	score := f.scoreParameter(ParamAnxiety, "i feel calm and relaxed today")
	assert.Equal(t, 7.0, score)
}

func TestScoreParameterCap(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	score := f.scoreParameter(ParamAnxiety, "calm relaxed peaceful confident")
	assert.Equal(t, 7.0, score)
}

func TestScoreParameterNeutral(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	score := f.scoreParameter(ParamAnxiety, "the weather was fine")
	assert.Equal(t, 5.0, score)
}

func TestScoreParameterKeywordCountsOnce(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	// One keyword repeated still counts as one hit: 7-1 = 6.
	score := f.scoreParameter(ParamAnxiety, "worry worry worry worry")
	assert.Equal(t, 6.0, score)
}

func TestMatchModes(t *testing.T) {
	sub := NewFallbackAssessor(MatchSubstring)
	word := NewFallbackAssessor(MatchWholeWord)

	assert.True(t, sub.matches("i read sadly ever after", "sad"))
	assert.False(t, word.matches("i read sadly ever after", "sad"))
	assert.True(t, word.matches("i am sad today", "sad"))
	assert.True(t, word.matches("i can't sleep at night", "can't sleep"))
}

func TestFallbackAssessmentFixedValues(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)
	turns := []Turn{
		{Role: RoleUser, Text: "I worry constantly and feel worthless"},
	}

	a := f.Assess("user-1", turns, "session-1")
	require.NoError(t, a.Validate())

	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, "session-1", a.SessionID)
	assert.False(t, a.AssessmentTimestamp.IsZero())

	for _, p := range []ParameterAssessment{
		a.AnxietyLevel, a.DepressionIndicators, a.StressLevel, a.SelfEsteem,
		a.EmotionalRegulation, a.MotivationLevel, a.SleepQuality,
	} {
		assert.Equal(t, SeverityModerate, p.Severity)
		assert.Equal(t, 0.5, p.Confidence)
		assert.Equal(t, []string{"Limited data available"}, p.Indicators)
		assert.Len(t, p.Recommendations, 1)
	}

	assert.Equal(t, "neutral", a.EmotionalState.DominantEmotion)
	assert.Equal(t, 5.0, a.OverallScore)
	assert.Equal(t, SeverityModerate, a.RiskLevel)
	assert.Equal(t, 0.3, a.AssessmentConfidence)
	assert.Equal(t, "Limited - insufficient conversation data", a.DataQuality)
	assert.True(t, a.FollowUpNeeded)
}

func TestFallbackAssessmentScoresKeywords(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)
	turns := []Turn{
		{Role: RoleUser, Text: "I worry and panic all the time"},
		{Role: RoleAssistant, Text: "calm relaxed peaceful"}, // ignored
	}

	a := f.Assess("user-1", turns, "")

	// Two anxiety indicators from user text only: 7-2 = 5.
	assert.Equal(t, 5.0, a.AnxietyLevel.Score)
	assert.Empty(t, a.SessionID)
}

func TestFallbackTotalOnEmptyConversation(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	a := f.Assess("user-1", nil, "")
	require.NoError(t, a.Validate())

	for _, p := range []ParameterAssessment{a.AnxietyLevel, a.SleepQuality} {
		assert.Equal(t, 5.0, p.Score)
	}
}

func TestDegraded(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)

	a := f.Assess("user-1", nil, "")
	assert.True(t, a.Degraded())

	a.AssessmentConfidence = 0.9
	a.DataQuality = "Good - detailed conversation"
	assert.False(t, a.Degraded())
}

func TestFallbackDeterministic(t *testing.T) {
	f := NewFallbackAssessor(MatchSubstring)
	turns := []Turn{
		{Role: RoleUser, Text: "stressed and exhausted, can't sleep, no motivation"},
	}

	first := f.Assess("user-1", turns, "s")
	for i := 0; i < 5; i++ {
		next := f.Assess("user-1", turns, "s")
		next.AssessmentTimestamp = first.AssessmentTimestamp
		assert.Equal(t, first, next)
	}
}
