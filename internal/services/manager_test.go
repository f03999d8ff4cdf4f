package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/repositories/sessions"
)

func newManager(t *testing.T) (*SessionManager, *sessions.FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := sessions.NewFileRepository(dir)

	m, err := NewSessionManager(context.Background(), repo, testValidator(), "alice")
	require.NoError(t, err)
	return m, repo, dir
}

func TestAdd_PersistsAndRoundTrips(t *testing.T) {
	m, repo, _ := newManager(t)
	ctx := context.Background()

	added, err := m.Add(ctx, "Maths", "Maths", "45")
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	require.False(t, added.Timestamp.IsZero())

	loaded, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "Maths", loaded[0].Subject)
	require.Equal(t, "Maths", loaded[0].Category)
	require.Equal(t, 45, loaded[0].Minutes)
}

func TestAdd_ValidationFailureLeavesSetUntouched(t *testing.T) {
	m, repo, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "Knitting", "Other", "45")
	require.ErrorIs(t, err, common.ErrUnapprovedSubject)

	require.Empty(t, m.Sessions())
	loaded, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestEdit_UpdatesOnlyThatRecord(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "Maths", "Maths", "20")
	require.NoError(t, err)
	second, err := m.Add(ctx, "English", "English", "30")
	require.NoError(t, err)

	edited, err := m.Edit(ctx, second.ID, "English", "English", "90")
	require.NoError(t, err)
	require.Equal(t, 90, edited.Minutes)
	require.True(t, edited.Timestamp.Equal(second.Timestamp), "edits preserve the original timestamp")

	all := m.Sessions()
	require.Len(t, all, 2)
	require.Equal(t, 20, all[0].Minutes)
	require.Equal(t, "Maths", all[0].Subject)
	require.Equal(t, 90, all[1].Minutes)
}

func TestEdit_ValidatesWithSameRules(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	s, err := m.Add(ctx, "Maths", "Maths", "20")
	require.NoError(t, err)

	_, err = m.Edit(ctx, s.ID, "Maths", "Maths", "0")
	require.ErrorIs(t, err, common.ErrInvalidMinutes)
	require.Equal(t, 20, m.Sessions()[0].Minutes)
}

func TestEdit_UnknownID(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.Edit(context.Background(), "no-such-id", "Maths", "Maths", "10")
	require.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestDelete_TwoPhase(t *testing.T) {
	m, _, dir := newManager(t)
	ctx := context.Background()

	s, err := m.Add(ctx, "Maths", "Maths", "45")
	require.NoError(t, err)

	doomed, err := m.RequestDelete(s.ID)
	require.NoError(t, err)
	require.Equal(t, s.ID, doomed.ID)
	require.Len(t, m.Sessions(), 1, "RequestDelete must not remove anything")

	require.NoError(t, m.ConfirmDelete(ctx, s.ID))
	require.Empty(t, m.Sessions())

	data, err := os.ReadFile(filepath.Join(dir, "alice_sessions.txt"))
	require.NoError(t, err)
	require.Empty(t, data, "deleting the last session leaves an empty durable file")
}

func TestDelete_UnknownID(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.RequestDelete("no-such-id")
	require.ErrorIs(t, err, common.ErrSessionNotFound)
	require.ErrorIs(t, m.ConfirmDelete(context.Background(), "no-such-id"), common.ErrSessionNotFound)
}

func TestReload_ReplacesWorkingSet(t *testing.T) {
	m, repo, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "Maths", "Maths", "45")
	require.NoError(t, err)

	// Durable state changes underneath the manager.
	require.NoError(t, repo.SaveAll(ctx, "alice", []models.StudySession{
		models.NewStudySession(time.Now(), "Physics", "Science", 15),
	}))

	require.NoError(t, m.Reload(ctx))
	all := m.Sessions()
	require.Len(t, all, 1)
	require.Equal(t, "Physics", all[0].Subject)
}

func TestNewSessionManager_FailsOnMalformedStore(t *testing.T) {
	dir := t.TempDir()
	repo := sessions.NewFileRepository(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_sessions.txt"), []byte("garbage\n"), 0o600))

	_, err := NewSessionManager(context.Background(), repo, testValidator(), "alice")
	require.ErrorIs(t, err, common.ErrMalformedRecord)
}

func TestSessions_ReturnsCopy(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "Maths", "Maths", "45")
	require.NoError(t, err)

	view := m.Sessions()
	view[0].Minutes = 1

	require.Equal(t, 45, m.Sessions()[0].Minutes)
}
