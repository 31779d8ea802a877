// Package analytics generates structured mental health assessments from chat
// transcripts. The primary path asks a generative model for a response
// constrained to the assessment schema; when that call fails in any way the
// package degrades to a deterministic keyword-scored assessment. Callers
// always receive a complete, schema-valid record and must read the
// confidence and data-quality fields to detect degraded results.
package analytics

import "strings"

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single role-tagged turn of a conversation. Turns are owned by
// the caller; this package only reads them.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// userText concatenates all user-turn texts, lower-cased, space-joined.
func userText(turns []Turn) string {
	var parts []string
	for _, t := range turns {
		if t.Role == RoleUser {
			parts = append(parts, t.Text)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func countUserTurns(turns []Turn) int {
	n := 0
	for _, t := range turns {
		if t.Role == RoleUser {
			n++
		}
	}
	return n
}
