package analytics

import (
	"fmt"
	"strings"
)

// DefaultTranscriptBudget caps how many bytes of rendered transcript are
// embedded in the prompt. When a conversation exceeds the budget the oldest
// turns are dropped so the most recent exchange is always kept, and an
// elision marker is rendered in their place.
const DefaultTranscriptBudget = 48 * 1024

// PromptBuilder renders the analysis instruction block handed to the
// generative model. Rendering is deterministic in its inputs.
type PromptBuilder struct {
	TranscriptBudget int
}

// NewPromptBuilder returns a builder with the default transcript budget.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{TranscriptBudget: DefaultTranscriptBudget}
}

func renderTurn(t Turn) string {
	role := "AI Assistant"
	if t.Role == RoleUser {
		role = "User"
	}
	return fmt.Sprintf("%s: %s\n\n", role, t.Text)
}

// renderTranscript renders the turns as alternating "User:"/"AI Assistant:"
// lines in original order, keeping the newest turns within the budget.
func (b *PromptBuilder) renderTranscript(turns []Turn) string {
	budget := b.TranscriptBudget
	if budget <= 0 {
		budget = DefaultTranscriptBudget
	}

	rendered := make([]string, len(turns))
	total := 0
	for i, t := range turns {
		rendered[i] = renderTurn(t)
		total += len(rendered[i])
	}

	start := 0
	for start < len(rendered) && total > budget {
		total -= len(rendered[start])
		start++
	}

	var sb strings.Builder
	if start > 0 {
		fmt.Fprintf(&sb, "[... %d earlier messages omitted ...]\n\n", start)
	}
	for _, line := range rendered[start:] {
		sb.WriteString(line)
	}
	return sb.String()
}

// Build renders the full analysis prompt from the transcript and its
// derived context.
func (b *PromptBuilder) Build(turns []Turn, ctx Context) string {
	var sb strings.Builder

	sb.WriteString(`You are a highly skilled clinical psychologist and mental health expert with extensive experience in youth psychology. Analyze the following conversation between a young person and an AI mental health companion. Provide a comprehensive, evidence-based assessment of their mental health state.

CONVERSATION CONTEXT:
`)
	fmt.Fprintf(&sb, "- Total messages: %d\n", ctx.TotalMessages)
	fmt.Fprintf(&sb, "- Topics discussed: %s\n", strings.Join(ctx.Topics, ", "))
	fmt.Fprintf(&sb, "- User engagement level: %g/10\n", ctx.EngagementLevel)
	fmt.Fprintf(&sb, "- Conversation quality: %g/10\n", ctx.Quality)

	sb.WriteString("\nCONVERSATION TO ANALYZE:\n")
	sb.WriteString(b.renderTranscript(turns))

	sb.WriteString(`
ANALYSIS INSTRUCTIONS:
Please provide a comprehensive mental health assessment following these guidelines:

1. EVIDENCE-BASED SCORING: Use the 0-10 scale where:
   - 0-2: Severe concerns requiring immediate attention
   - 3-4: Significant challenges needing professional support
   - 5-6: Moderate concerns with room for improvement
   - 7-8: Good mental health with minor areas to address
   - 9-10: Excellent mental health and coping

2. PARAMETER ASSESSMENT: For each mental health parameter, analyze:
   - Direct statements and expressions of the user
   - Implicit emotional indicators
   - Behavioral patterns mentioned
   - Coping strategies used
   - Language patterns and emotional tone

3. YOUTH-SPECIFIC CONSIDERATIONS: Account for:
   - Developmental stage appropriate expectations
   - Common youth mental health challenges
   - Academic and social pressures
   - Identity formation issues
   - Technology and social media impacts

4. RISK ASSESSMENT: Identify:
   - Immediate safety concerns
   - Concerning patterns requiring attention
   - Protective factors and strengths
   - Support system quality

5. RECOMMENDATIONS: Provide:
   - Actionable, age-appropriate suggestions
   - Evidence-based interventions
   - Professional resources when needed
   - Specific skills to develop

6. CONFIDENCE LEVELS: Base confidence on:
   - Depth and quality of conversation
   - Consistency of indicators
   - Amount of relevant information shared
   - Clarity of emotional expression

CRITICAL ASSESSMENT AREAS:

Anxiety Assessment: Look for worry patterns, physical symptoms mentioned, avoidance behaviors, catastrophic thinking, fear expressions, and anxiety management strategies.

Depression Indicators: Analyze mood descriptions, energy levels, hopelessness, self-worth statements, interest in activities, and social withdrawal patterns.

Stress Management: Evaluate pressure handling, overwhelm indicators, coping strategies, time management, and stress responses.

Self-Esteem: Assess self-talk patterns, confidence expressions, self-worth statements, achievement orientation, and identity concerns.

Emotional Regulation: Look at emotional intensity, mood stability, impulse control, anger management, and emotional awareness.

Social Connections: Evaluate relationship descriptions, social support quality, communication patterns, and isolation indicators.

Cognitive Patterns: Identify thinking distortions, problem-solving approaches, rumination patterns, and cognitive flexibility.

Coping Mechanisms: Analyze stress responses, healthy vs. unhealthy coping, resilience indicators, and adaptation strategies.

Please provide your assessment in the exact JSON format specified by the schema, ensuring all required fields are included with appropriate data types and value ranges.
`)

	return sb.String()
}
