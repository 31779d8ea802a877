package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeContextEmpty(t *testing.T) {
	ctx := SummarizeContext(nil)

	assert.Equal(t, 0, ctx.TotalMessages)
	assert.Equal(t, 0.0, ctx.EstimatedDurationMinutes)
	assert.Equal(t, 0.0, ctx.EngagementLevel)
	assert.Equal(t, 5.0, ctx.Quality)
	assert.Empty(t, ctx.Topics)
}

func TestSummarizeContextDuration(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "hello"},
		{Role: RoleAssistant, Text: "hi"},
		{Role: RoleUser, Text: "ok"},
	}

	ctx := SummarizeContext(turns)

	assert.Equal(t, 3, ctx.TotalMessages)
	assert.Equal(t, 6.0, ctx.EstimatedDurationMinutes)
}

func TestSummarizeContextEngagementCapped(t *testing.T) {
	var turns []Turn
	for i := 0; i < 10; i++ {
		turns = append(turns, Turn{Role: RoleUser, Text: "message"})
	}

	ctx := SummarizeContext(turns)

	assert.Equal(t, 10.0, ctx.EngagementLevel)
}

func TestSummarizeContextQuality(t *testing.T) {
	// One user turn of exactly 50 characters: quality = 50/50*5 + 5 = 10.
	turns := []Turn{
		{Role: RoleUser, Text: strings.Repeat("a", 50)},
	}

	ctx := SummarizeContext(turns)

	assert.Equal(t, 10.0, ctx.Quality)
}

func TestSummarizeContextQualityIgnoresAssistantText(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: strings.Repeat("a", 10)},
		{Role: RoleAssistant, Text: strings.Repeat("b", 500)},
	}

	ctx := SummarizeContext(turns)

	assert.Equal(t, 10.0/50*5+5, ctx.Quality)
}

func TestSummarizeContextTopics(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "I feel so Anxious about work and I can't sleep"},
		{Role: RoleAssistant, Text: "depressed hopeless"}, // assistant text is ignored
	}

	ctx := SummarizeContext(turns)

	assert.Equal(t, []string{"anxiety", "work_school", "sleep"}, ctx.Topics)
}

func TestSummarizeContextNoTopics(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "the weather has been nice lately"},
	}

	assert.Empty(t, SummarizeContext(turns).Topics)
}

func TestSummarizeContextDeterministic(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "stress at school, bad sleep, family trouble"},
		{Role: RoleAssistant, Text: "tell me more"},
		{Role: RoleUser, Text: "I worry a lot"},
	}

	first := SummarizeContext(turns)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SummarizeContext(turns))
	}
}
