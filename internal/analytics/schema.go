package analytics

import (
	"fmt"
	"time"
)

// Severity is the five-point categorical band summarizing a parameter's
// clinical concern level.
type Severity string

const (
	SeverityVeryLow  Severity = "very_low"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityVeryHigh Severity = "very_high"
)

// ValidSeverity reports whether s is one of the five severity bands.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityVeryLow, SeverityLow, SeverityModerate, SeverityHigh, SeverityVeryHigh:
		return true
	}
	return false
}

// ParameterAssessment is an individual mental health parameter assessment.
// Score is 0-10 (0 = very poor, 10 = excellent); Confidence is 0-1.
type ParameterAssessment struct {
	Name            string   `json:"name"`
	Score           float64  `json:"score"`
	Severity        Severity `json:"severity"`
	Confidence      float64  `json:"confidence"`
	Indicators      []string `json:"indicators"`
	Recommendations []string `json:"recommendations"`
}

// EmotionalState is the current emotional state assessment.
type EmotionalState struct {
	DominantEmotion    string  `json:"dominant_emotion"`
	EmotionIntensity   float64 `json:"emotion_intensity"`
	EmotionalStability float64 `json:"emotional_stability"`
	EmotionalAwareness float64 `json:"emotional_awareness"`
}

// CognitivePatterns assesses thinking styles and cognitive health.
type CognitivePatterns struct {
	CognitiveDistortions  []string           `json:"cognitive_distortions"`
	ThoughtPatterns       map[string]float64 `json:"thought_patterns"`
	ProblemSolvingAbility float64            `json:"problem_solving_ability"`
	SelfAwareness         float64            `json:"self_awareness"`
}

// SocialConnections assesses relationships and support systems.
type SocialConnections struct {
	SocialSupportQuality     float64 `json:"social_support_quality"`
	RelationshipSatisfaction float64 `json:"relationship_satisfaction"`
	SocialIsolationLevel     float64 `json:"social_isolation_level"`
	CommunicationSkills      float64 `json:"communication_skills"`
}

// CopingMechanisms assesses coping strategies and resilience.
type CopingMechanisms struct {
	HealthyCopingStrategies []string `json:"healthy_coping_strategies"`
	UnhealthyCopingPatterns []string `json:"unhealthy_coping_patterns"`
	StressManagement        float64  `json:"stress_management"`
	ResilienceLevel         float64  `json:"resilience_level"`
}

// Assessment is the comprehensive mental health assessment record. It is
// constructed fresh on every analytics request and never mutated afterwards.
type Assessment struct {
	AssessmentTimestamp time.Time `json:"assessment_timestamp"`
	UserID              string    `json:"user_id"`
	SessionID           string    `json:"session_id,omitempty"`

	// Core mental health parameters
	AnxietyLevel         ParameterAssessment `json:"anxiety_level"`
	DepressionIndicators ParameterAssessment `json:"depression_indicators"`
	StressLevel          ParameterAssessment `json:"stress_level"`
	SelfEsteem           ParameterAssessment `json:"self_esteem"`
	EmotionalRegulation  ParameterAssessment `json:"emotional_regulation"`
	MotivationLevel      ParameterAssessment `json:"motivation_level"`
	SleepQuality         ParameterAssessment `json:"sleep_quality"`

	// Comprehensive sub-assessments
	EmotionalState    EmotionalState    `json:"emotional_state"`
	CognitivePatterns CognitivePatterns `json:"cognitive_patterns"`
	SocialConnections SocialConnections `json:"social_connections"`
	CopingMechanisms  CopingMechanisms  `json:"coping_mechanisms"`

	// Overall assessment
	OverallScore      float64  `json:"overall_mental_health_score"`
	RiskLevel         Severity `json:"risk_level"`
	ImmediateConcerns []string `json:"immediate_concerns"`
	Strengths         []string `json:"strengths"`

	// Recommendations and insights
	PriorityRecommendations []string `json:"priority_recommendations"`
	SuggestedInterventions  []string `json:"suggested_interventions"`
	ProgressIndicators      []string `json:"progress_indicators"`

	// Confidence and metadata
	AssessmentConfidence float64 `json:"assessment_confidence"`
	DataQuality          string  `json:"data_quality"`
	FollowUpNeeded       bool    `json:"follow_up_needed"`
}

func checkUnit(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s out of range [0,1]: %v", field, v)
	}
	return nil
}

func checkScore(field string, v float64) error {
	if v < 0 || v > 10 {
		return fmt.Errorf("%s out of range [0,10]: %v", field, v)
	}
	return nil
}

func (p *ParameterAssessment) validate(field string) error {
	if p.Name == "" {
		return fmt.Errorf("%s.name missing", field)
	}
	if err := checkScore(field+".score", p.Score); err != nil {
		return err
	}
	if !ValidSeverity(p.Severity) {
		return fmt.Errorf("%s.severity invalid: %q", field, p.Severity)
	}
	if err := checkUnit(field+".confidence", p.Confidence); err != nil {
		return err
	}
	// Lists may be empty but must be present.
	if p.Indicators == nil {
		return fmt.Errorf("%s.indicators missing", field)
	}
	if p.Recommendations == nil {
		return fmt.Errorf("%s.recommendations missing", field)
	}
	return nil
}

// Validate checks the record against the schema contract and fails closed:
// any missing required field or out-of-range value is an error. Callers on
// the structured path reject and fall back rather than accepting a
// partially-valid record.
func (a *Assessment) Validate() error {
	params := []struct {
		field string
		p     *ParameterAssessment
	}{
		{ParamAnxiety, &a.AnxietyLevel},
		{ParamDepression, &a.DepressionIndicators},
		{ParamStress, &a.StressLevel},
		{ParamSelfEsteem, &a.SelfEsteem},
		{ParamEmotionalRegulation, &a.EmotionalRegulation},
		{ParamMotivation, &a.MotivationLevel},
		{ParamSleepQuality, &a.SleepQuality},
	}
	for _, pp := range params {
		if err := pp.p.validate(pp.field); err != nil {
			return err
		}
	}

	if a.EmotionalState.DominantEmotion == "" {
		return fmt.Errorf("emotional_state.dominant_emotion missing")
	}
	for field, v := range map[string]float64{
		"emotional_state.emotion_intensity":            a.EmotionalState.EmotionIntensity,
		"emotional_state.emotional_stability":          a.EmotionalState.EmotionalStability,
		"emotional_state.emotional_awareness":          a.EmotionalState.EmotionalAwareness,
		"cognitive_patterns.problem_solving_ability":   a.CognitivePatterns.ProblemSolvingAbility,
		"cognitive_patterns.self_awareness":            a.CognitivePatterns.SelfAwareness,
		"social_connections.social_support_quality":    a.SocialConnections.SocialSupportQuality,
		"social_connections.relationship_satisfaction": a.SocialConnections.RelationshipSatisfaction,
		"social_connections.social_isolation_level":    a.SocialConnections.SocialIsolationLevel,
		"social_connections.communication_skills":      a.SocialConnections.CommunicationSkills,
		"coping_mechanisms.stress_management":          a.CopingMechanisms.StressManagement,
		"coping_mechanisms.resilience_level":           a.CopingMechanisms.ResilienceLevel,
		"overall_mental_health_score":                  a.OverallScore,
	} {
		if err := checkScore(field, v); err != nil {
			return err
		}
	}
	for field, v := range a.CognitivePatterns.ThoughtPatterns {
		if err := checkScore("cognitive_patterns.thought_patterns."+field, v); err != nil {
			return err
		}
	}

	if !ValidSeverity(a.RiskLevel) {
		return fmt.Errorf("risk_level invalid: %q", a.RiskLevel)
	}
	if err := checkUnit("assessment_confidence", a.AssessmentConfidence); err != nil {
		return err
	}
	if a.DataQuality == "" {
		return fmt.Errorf("data_quality missing")
	}

	if a.CognitivePatterns.ThoughtPatterns == nil {
		return fmt.Errorf("cognitive_patterns.thought_patterns missing")
	}

	for field, list := range map[string][]string{
		"cognitive_patterns.cognitive_distortions":    a.CognitivePatterns.CognitiveDistortions,
		"coping_mechanisms.healthy_coping_strategies": a.CopingMechanisms.HealthyCopingStrategies,
		"coping_mechanisms.unhealthy_coping_patterns": a.CopingMechanisms.UnhealthyCopingPatterns,
		"immediate_concerns":                          a.ImmediateConcerns,
		"strengths":                                   a.Strengths,
		"priority_recommendations":                    a.PriorityRecommendations,
		"suggested_interventions":                     a.SuggestedInterventions,
		"progress_indicators":                         a.ProgressIndicators,
	} {
		if list == nil {
			return fmt.Errorf("%s missing", field)
		}
	}

	return nil
}
