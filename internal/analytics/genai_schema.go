package analytics

import (
	"github.com/google/generative-ai-go/genai"
)

// ResponseSchema returns the genai schema used to constrain the generative
// model's output to the Assessment record. Field names match the JSON tags
// on Assessment exactly. user_id, session_id and the timestamp are omitted:
// the analyzer injects those itself and ignores any model-supplied values.
func ResponseSchema() *genai.Schema {
	score := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: desc + " (0-10)"}
	}
	stringList := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: desc,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	}
	severity := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeString,
			Description: desc,
			Format:      "enum",
			Enum: []string{
				string(SeverityVeryLow),
				string(SeverityLow),
				string(SeverityModerate),
				string(SeverityHigh),
				string(SeverityVeryHigh),
			},
		}
	}
	parameter := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeObject,
			Description: desc,
			Properties: map[string]*genai.Schema{
				"name":            {Type: genai.TypeString, Description: "Name of the mental health parameter"},
				"score":           score("Score from 0-10 (0=very poor, 10=excellent)"),
				"severity":        severity("Categorical severity level"),
				"confidence":      {Type: genai.TypeNumber, Description: "Confidence in this assessment (0-1)"},
				"indicators":      stringList("Key phrases/behaviors that influenced this score"),
				"recommendations": stringList("Specific recommendations for improvement"),
			},
			Required: []string{"name", "score", "severity", "confidence", "indicators", "recommendations"},
		}
	}

	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "Comprehensive mental health assessment",
		Properties: map[string]*genai.Schema{
			"anxiety_level":         parameter("Anxiety and worry assessment"),
			"depression_indicators": parameter("Depression and mood assessment"),
			"stress_level":          parameter("Stress and pressure assessment"),
			"self_esteem":           parameter("Self-worth and confidence assessment"),
			"emotional_regulation":  parameter("Ability to manage emotions"),
			"motivation_level":      parameter("Drive and motivation assessment"),
			"sleep_quality":         parameter("Sleep patterns and quality"),
			"emotional_state": {
				Type:        genai.TypeObject,
				Description: "Current emotional state analysis",
				Properties: map[string]*genai.Schema{
					"dominant_emotion":    {Type: genai.TypeString, Description: "Primary emotion detected (e.g. anxious, sad, hopeful)"},
					"emotion_intensity":   score("Intensity of the dominant emotion"),
					"emotional_stability": score("Emotional stability (0=very unstable, 10=very stable)"),
					"emotional_awareness": score("User's awareness of their emotions"),
				},
				Required: []string{"dominant_emotion", "emotion_intensity", "emotional_stability", "emotional_awareness"},
			},
			"cognitive_patterns": {
				Type:        genai.TypeObject,
				Description: "Thinking patterns and cognitive health",
				Properties: map[string]*genai.Schema{
					"cognitive_distortions": stringList("Identified cognitive distortions (e.g. catastrophizing)"),
					"thought_patterns": {
						Type:        genai.TypeObject,
						Description: "Thinking pattern scores keyed by pattern name",
						Properties: map[string]*genai.Schema{
							"positive_thinking": score("Positive thinking"),
							"rumination":        score("Rumination"),
						},
					},
					"problem_solving_ability": score("Ability to think through problems constructively"),
					"self_awareness":          score("Level of self-reflection and insight"),
				},
				Required: []string{"cognitive_distortions", "thought_patterns", "problem_solving_ability", "self_awareness"},
			},
			"social_connections": {
				Type:        genai.TypeObject,
				Description: "Social relationships and support",
				Properties: map[string]*genai.Schema{
					"social_support_quality":    score("Quality of social support system"),
					"relationship_satisfaction": score("Satisfaction with relationships"),
					"social_isolation_level":    score("Social isolation (0=very isolated, 10=well connected)"),
					"communication_skills":      score("Effectiveness in communicating with others"),
				},
				Required: []string{"social_support_quality", "relationship_satisfaction", "social_isolation_level", "communication_skills"},
			},
			"coping_mechanisms": {
				Type:        genai.TypeObject,
				Description: "Coping strategies and resilience",
				Properties: map[string]*genai.Schema{
					"healthy_coping_strategies": stringList("Identified healthy coping mechanisms"),
					"unhealthy_coping_patterns": stringList("Identified unhealthy coping patterns"),
					"stress_management":         score("Effectiveness of stress management"),
					"resilience_level":          score("Overall resilience and adaptability"),
				},
				Required: []string{"healthy_coping_strategies", "unhealthy_coping_patterns", "stress_management", "resilience_level"},
			},
			"overall_mental_health_score": score("Comprehensive mental health score"),
			"risk_level":                  severity("Overall risk assessment"),
			"immediate_concerns":          stringList("Areas requiring immediate attention"),
			"strengths":                   stringList("Identified mental health strengths"),
			"priority_recommendations":    stringList("Top 3-5 priority recommendations"),
			"suggested_interventions":     stringList("Suggested therapeutic interventions"),
			"progress_indicators":         stringList("Key metrics to track progress"),
			"assessment_confidence":       {Type: genai.TypeNumber, Description: "Overall confidence in this assessment (0-1)"},
			"data_quality":                {Type: genai.TypeString, Description: "Quality of conversation data for analysis"},
			"follow_up_needed":            {Type: genai.TypeBoolean, Description: "Whether professional follow-up is recommended"},
		},
		Required: []string{
			"anxiety_level", "depression_indicators", "stress_level", "self_esteem",
			"emotional_regulation", "motivation_level", "sleep_quality",
			"emotional_state", "cognitive_patterns", "social_connections", "coping_mechanisms",
			"overall_mental_health_score", "risk_level", "immediate_concerns", "strengths",
			"priority_recommendations", "suggested_interventions", "progress_indicators",
			"assessment_confidence", "data_quality", "follow_up_needed",
		},
	}
}
