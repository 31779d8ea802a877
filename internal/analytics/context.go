package analytics

import "strings"

// Context holds lightweight descriptive statistics derived from a raw
// conversation. It is recomputed on every call and never persisted.
type Context struct {
	TotalMessages            int      `json:"total_messages"`
	EstimatedDurationMinutes float64  `json:"estimated_duration_minutes"`
	Topics                   []string `json:"topics"`
	EngagementLevel          float64  `json:"engagement_level"`
	Quality                  float64  `json:"quality"`
}

// topicKeywords maps topic tags to their trigger keywords. Order matters:
// Topics is rendered in this order so context derivation stays deterministic.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"anxiety", []string{"anxious", "worry", "nervous", "panic", "fear"}},
	{"depression", []string{"sad", "depressed", "hopeless", "empty", "down"}},
	{"stress", []string{"stress", "pressure", "overwhelmed", "burnout"}},
	{"relationships", []string{"friend", "family", "relationship", "partner", "social"}},
	{"work_school", []string{"work", "school", "job", "study", "career", "college"}},
	{"sleep", []string{"sleep", "tired", "exhausted", "insomnia", "rest"}},
	{"self_esteem", []string{"confidence", "self-worth", "inadequate", "capable", "failure"}},
}

// SummarizeContext derives conversation statistics. It is total over all
// inputs: an empty conversation yields floor values (engagement 0, quality 5).
func SummarizeContext(turns []Turn) Context {
	userTurns := countUserTurns(turns)

	// Mean user-turn length, guarding the empty conversation with a
	// minimum denominator of 1.
	var totalLen int
	for _, t := range turns {
		if t.Role == RoleUser {
			totalLen += len(t.Text)
		}
	}
	denom := userTurns
	if denom < 1 {
		denom = 1
	}
	meanLen := float64(totalLen) / float64(denom)

	quality := meanLen/50*5 + 5
	if quality > 10 {
		quality = 10
	}

	engagement := float64(userTurns) / 3 * 10
	if engagement > 10 {
		engagement = 10
	}

	all := userText(turns)
	var topics []string
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(all, kw) {
				topics = append(topics, tk.topic)
				break
			}
		}
	}

	return Context{
		TotalMessages:            len(turns),
		EstimatedDurationMinutes: float64(len(turns)) * 2,
		Topics:                   topics,
		EngagementLevel:          engagement,
		Quality:                  quality,
	}
}
