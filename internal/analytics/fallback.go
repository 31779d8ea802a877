package analytics

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MatchMode controls how fallback keywords are matched against user text.
type MatchMode int

const (
	// MatchSubstring matches keywords anywhere in the text ("sad" matches
	// inside "sadly"). This preserves the source scoring behavior and is
	// the default.
	MatchSubstring MatchMode = iota
	// MatchWholeWord requires keyword boundaries on both sides.
	MatchWholeWord
)

const (
	fallbackParameterConfidence = 0.5
	fallbackOverallConfidence   = 0.3
	fallbackDataQuality         = "Limited - insufficient conversation data"
)

// Degraded reports whether this record came from the keyword fallback
// rather than the model path.
func (a *Assessment) Degraded() bool {
	return a.AssessmentConfidence == fallbackOverallConfidence && a.DataQuality == fallbackDataQuality
}

// FallbackAssessor computes a deterministic, keyword-scored assessment. It
// never fails and is total over all inputs, including an empty conversation.
type FallbackAssessor struct {
	mode MatchMode
	now  func() time.Time
}

// NewFallbackAssessor creates an assessor with the given match mode.
func NewFallbackAssessor(mode MatchMode) *FallbackAssessor {
	return &FallbackAssessor{mode: mode, now: time.Now}
}

func (f *FallbackAssessor) matches(text, keyword string) bool {
	if f.mode == MatchWholeWord {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		return re.MatchString(text)
	}
	return strings.Contains(text, keyword)
}

// scoreParameter scores one parameter from the concatenated user text.
// Each present keyword counts once. More problem-keyword hits pull the
// score down from a base of 7 (floored at 3); otherwise wellness-keyword
// hits raise it from a base of 5 (capped at 7).
func (f *FallbackAssessor) scoreParameter(key, text string) float64 {
	param := Parameters[key]

	positive := 0
	for _, kw := range param.Indicators {
		if f.matches(text, kw) {
			positive++
		}
	}
	negative := 0
	for _, kw := range param.ReverseIndicators {
		if f.matches(text, kw) {
			negative++
		}
	}

	if positive > negative {
		score := float64(7 - positive)
		if score < 3 {
			score = 3
		}
		return score
	}
	score := float64(5 + negative)
	if score > 7 {
		score = 7
	}
	return score
}

func fallbackParameter(name string, score float64) ParameterAssessment {
	return ParameterAssessment{
		Name:            name,
		Score:           score,
		Severity:        SeverityModerate,
		Confidence:      fallbackParameterConfidence,
		Indicators:      []string{"Limited data available"},
		Recommendations: []string{fmt.Sprintf("Consider discussing %s in more detail", name)},
	}
}

// Assess builds a complete, schema-valid, clearly low-confidence assessment
// from keyword counts alone. The nested sub-assessments are filled with
// fixed neutral values rather than keyword-derived ones.
func (f *FallbackAssessor) Assess(userID string, turns []Turn, sessionID string) *Assessment {
	text := userText(turns)

	param := func(key string) ParameterAssessment {
		return fallbackParameter(Parameters[key].Name, f.scoreParameter(key, text))
	}

	return &Assessment{
		AssessmentTimestamp: f.now(),
		UserID:              userID,
		SessionID:           sessionID,

		AnxietyLevel:         param(ParamAnxiety),
		DepressionIndicators: param(ParamDepression),
		StressLevel:          param(ParamStress),
		SelfEsteem:           param(ParamSelfEsteem),
		EmotionalRegulation:  param(ParamEmotionalRegulation),
		MotivationLevel:      param(ParamMotivation),
		SleepQuality:         param(ParamSleepQuality),

		EmotionalState: EmotionalState{
			DominantEmotion:    "neutral",
			EmotionIntensity:   5.0,
			EmotionalStability: 5.0,
			EmotionalAwareness: 5.0,
		},
		CognitivePatterns: CognitivePatterns{
			CognitiveDistortions:  []string{},
			ThoughtPatterns:       map[string]float64{"positive_thinking": 5.0},
			ProblemSolvingAbility: 5.0,
			SelfAwareness:         5.0,
		},
		SocialConnections: SocialConnections{
			SocialSupportQuality:     5.0,
			RelationshipSatisfaction: 5.0,
			SocialIsolationLevel:     5.0,
			CommunicationSkills:      5.0,
		},
		CopingMechanisms: CopingMechanisms{
			HealthyCopingStrategies: []string{"Seeking support"},
			UnhealthyCopingPatterns: []string{},
			StressManagement:        5.0,
			ResilienceLevel:         5.0,
		},

		OverallScore:      5.0,
		RiskLevel:         SeverityModerate,
		ImmediateConcerns: []string{"Need more conversation data for accurate assessment"},
		Strengths:         []string{"Seeking help and support"},

		PriorityRecommendations: []string{"Continue engaging in supportive conversations"},
		SuggestedInterventions:  []string{"Regular check-ins with mental health support"},
		ProgressIndicators:      []string{"Frequency of positive expressions", "Engagement level"},

		AssessmentConfidence: fallbackOverallConfidence,
		DataQuality:          fallbackDataQuality,
		FollowUpNeeded:       true,
	}
}
