package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/internal/model"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
)

func newTestSessionService() *SessionService {
	return NewSessionService(&logger.Logger{Logger: zap.NewNop()})
}

func TestSessionCreateDefaults(t *testing.T) {
	svc := newTestSessionService()

	sess, err := svc.Create(context.Background(), "user-1", &model.CreateSessionRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-1", sess.UserID)
	assert.Equal(t, "counselor", sess.Persona)
	assert.True(t, strings.HasSuffix(sess.Name, " Chat"))
	assert.False(t, sess.CreatedAt.IsZero())
}

func TestSessionCreateExplicit(t *testing.T) {
	svc := newTestSessionService()

	sess, err := svc.Create(context.Background(), "user-1", &model.CreateSessionRequest{
		Name:    "Evening check-in",
		Persona: "listener",
	})
	require.NoError(t, err)

	assert.Equal(t, "Evening check-in", sess.Name)
	assert.Equal(t, "listener", sess.Persona)
}

func TestSessionCreateRejectsUnknownPersona(t *testing.T) {
	svc := newTestSessionService()

	_, err := svc.Create(context.Background(), "user-1", &model.CreateSessionRequest{Persona: "guru"})
	assert.Error(t, err)
}

func TestSessionGetScopedToOwner(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, "user-1", &model.CreateSessionRequest{})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	_, err = svc.Get(ctx, "user-2", sess.ID)
	assert.Error(t, err)
}

func TestSessionList(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "user-1", &model.CreateSessionRequest{})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "user-2", &model.CreateSessionRequest{})
	require.NoError(t, err)

	list, err := svc.List(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Sessions, 3)
	assert.False(t, list.HasMore)

	page, err := svc.List(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	assert.Len(t, page.Sessions, 2)
	assert.True(t, page.HasMore)
}

func TestSessionUpdate(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, "user-1", &model.CreateSessionRequest{})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-1", sess.ID, &model.UpdateSessionRequest{
		Name:    "Renamed",
		Persona: "cbt",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "cbt", updated.Persona)

	_, err = svc.Update(ctx, "user-1", sess.ID, &model.UpdateSessionRequest{Persona: "guru"})
	assert.Error(t, err)
}

func TestSessionDelete(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, "user-1", &model.CreateSessionRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", sess.ID))

	_, err = svc.Get(ctx, "user-1", sess.ID)
	assert.Error(t, err)

	list, err := svc.List(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestSessionUpdateLastMessage(t *testing.T) {
	svc := newTestSessionService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, "user-1", &model.CreateSessionRequest{})
	require.NoError(t, err)

	msg := &model.Message{ID: "m1", SessionID: sess.ID, UserID: "user-1", Role: model.RoleUser, Content: "hi"}
	require.NoError(t, svc.UpdateLastMessage(ctx, "user-1", sess.ID, msg))

	got, err := svc.Get(ctx, "user-1", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MessageCount)
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, "hi", got.LastMessage.Content)
}
