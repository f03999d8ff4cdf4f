package sessions

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
)

func newRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileRepository(dir), dir
}

func someSessions() []models.StudySession {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return []models.StudySession{
		models.NewStudySession(base, "Maths", "Maths", 45),
		models.NewStudySession(base.Add(time.Hour), "English", "English", 30),
	}
}

func TestLoad_NoFileYieldsEmptySet(t *testing.T) {
	repo, _ := newRepo(t)

	got, err := repo.Load(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSaveAll_RoundTrips(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()
	in := someSessions()

	require.NoError(t, repo.SaveAll(ctx, "alice", in))

	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range in {
		require.True(t, got[i].Timestamp.Equal(in[i].Timestamp))
		require.Equal(t, in[i].Subject, got[i].Subject)
		require.Equal(t, in[i].Category, got[i].Category)
		require.Equal(t, in[i].Minutes, got[i].Minutes)
	}
}

func TestSaveAll_IsIdempotent(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()
	in := someSessions()

	require.NoError(t, repo.SaveAll(ctx, "alice", in))
	first, err := os.ReadFile(filepath.Join(dir, "alice_sessions.txt"))
	require.NoError(t, err)

	require.NoError(t, repo.SaveAll(ctx, "alice", in))
	second, err := os.ReadFile(filepath.Join(dir, "alice_sessions.txt"))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSaveAll_ReplacesWholeSet(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, "alice", someSessions()))
	require.NoError(t, repo.SaveAll(ctx, "alice", nil))

	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, got, "a save of the empty set leaves an empty durable file")
}

func TestSaveAll_LeavesNoTempFiles(t *testing.T) {
	repo, dir := newRepo(t)

	require.NoError(t, repo.SaveAll(context.Background(), "alice", someSessions()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "alice_sessions.txt", entries[0].Name())
}

func TestLoad_MalformedLineReportsLineNumber(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	good := models.NewStudySession(time.Now(), "Maths", "Maths", 30).Record()
	content := good + "\n" + "not,a,record\n" + good + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_sessions.txt"), []byte(content), 0o600))

	_, err := repo.Load(ctx, "alice")
	require.ErrorIs(t, err, common.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 2")
}

func TestLoad_UsersAreIsolated(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveAll(ctx, "alice", someSessions()))

	got, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, got)
}
