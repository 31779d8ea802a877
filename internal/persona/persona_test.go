package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrderIsStable(t *testing.T) {
	first := List()
	second := List()
	require.Len(t, first, 4)
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
	}
	assert.Equal(t, KeyCounselor, first[0].Key)
	assert.Equal(t, KeyCBT, first[3].Key)
}

func TestGet(t *testing.T) {
	p, ok := Get(KeyListener)
	require.True(t, ok)
	assert.Equal(t, "Compassionate Listener", p.Name)
	assert.NotEmpty(t, p.SystemPrompt)

	_, ok = Get("therapist-9000")
	assert.False(t, ok)
}

func TestDefaultIsCounselor(t *testing.T) {
	assert.Equal(t, KeyCounselor, Default().Key)
}

func TestEveryPresetHasPromptAndDescription(t *testing.T) {
	for _, p := range List() {
		assert.NotEmpty(t, p.SystemPrompt, "persona %s", p.Key)
		assert.NotEmpty(t, p.Description, "persona %s", p.Key)
		assert.True(t, Valid(p.Key))
	}
}

func TestListCopyIsIsolated(t *testing.T) {
	got := List()
	got[0].Name = "mutated"
	assert.Equal(t, "Balanced Counselor", Default().Name)
}
