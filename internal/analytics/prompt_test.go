package analytics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilderDeterministic(t *testing.T) {
	b := NewPromptBuilder()
	turns := sampleTurns()
	ctx := SummarizeContext(turns)

	first := b.Build(turns, ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, b.Build(turns, ctx))
	}
}

func TestPromptBuilderContent(t *testing.T) {
	b := NewPromptBuilder()
	turns := sampleTurns()

	prompt := b.Build(turns, SummarizeContext(turns))

	assert.Contains(t, prompt, "CONVERSATION CONTEXT:")
	assert.Contains(t, prompt, "- Total messages: 3")
	assert.Contains(t, prompt, "CONVERSATION TO ANALYZE:")
	assert.Contains(t, prompt, "User: I have been feeling anxious about my job")
	assert.Contains(t, prompt, "AI Assistant: That sounds hard.")
	assert.Contains(t, prompt, "ANALYSIS INSTRUCTIONS:")
	assert.Contains(t, prompt, "exact JSON format")
}

func TestPromptBuilderTruncatesOldestTurns(t *testing.T) {
	b := &PromptBuilder{TranscriptBudget: 200}

	var turns []Turn
	for i := 0; i < 20; i++ {
		turns = append(turns, Turn{Role: RoleUser, Text: fmt.Sprintf("message number %d with some padding text", i)})
	}

	prompt := b.Build(turns, SummarizeContext(turns))

	assert.Contains(t, prompt, "earlier messages omitted")
	assert.NotContains(t, prompt, "message number 0 ")
	assert.Contains(t, prompt, "message number 19")
}

func TestPromptBuilderNoTruncationUnderBudget(t *testing.T) {
	b := NewPromptBuilder()
	turns := sampleTurns()

	prompt := b.Build(turns, SummarizeContext(turns))

	assert.NotContains(t, prompt, "omitted")
}

func TestRenderTranscriptOrder(t *testing.T) {
	b := NewPromptBuilder()
	turns := []Turn{
		{Role: RoleUser, Text: "first"},
		{Role: RoleAssistant, Text: "second"},
		{Role: RoleUser, Text: "third"},
	}

	transcript := b.renderTranscript(turns)

	iFirst := strings.Index(transcript, "first")
	iSecond := strings.Index(transcript, "second")
	iThird := strings.Index(transcript, "third")
	assert.True(t, iFirst < iSecond && iSecond < iThird)
}
