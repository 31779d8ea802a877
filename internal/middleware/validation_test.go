package middleware

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("a", 100001)))
	assert.Error(t, ValidateMessageContent(string([]byte{0xff, 0xfe})))
}

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID(uuid.New().String()))
	assert.Error(t, ValidateSessionID("not-a-uuid"))
	assert.Error(t, ValidateSessionID(""))
}

func TestValidateSessionName(t *testing.T) {
	assert.NoError(t, ValidateSessionName(""))
	assert.NoError(t, ValidateSessionName("Evening check-in"))
	assert.Error(t, ValidateSessionName(strings.Repeat("n", 257)))
}

func TestValidatePersona(t *testing.T) {
	assert.NoError(t, ValidatePersona(""))
	assert.NoError(t, ValidatePersona("counselor"))
	assert.NoError(t, ValidatePersona("cbt"))
	assert.Error(t, ValidatePersona("therapist-9000"))
}
