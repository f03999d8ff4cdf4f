package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studytrack/studytrack/internal/models"
)

func sessionOn(ts time.Time, subject string, minutes int) models.StudySession {
	return models.NewStudySession(ts, subject, "Other", minutes)
}

func TestLastNDays_BoundaryInclusive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	onBoundary := sessionOn(now.AddDate(0, 0, -7), "Maths", 30)
	justInside := sessionOn(now.AddDate(0, 0, -6), "English", 20)
	justOutside := sessionOn(now.AddDate(0, 0, -7).Add(-time.Second), "Physics", 10)

	got := LastNDays([]models.StudySession{justOutside, onBoundary, justInside}, 7, now)

	require.Len(t, got, 2)
	require.Equal(t, "Maths", got[0].Subject)
	require.Equal(t, "English", got[1].Subject)
}

func TestLastNDays_PreservesOrderAndInput(t *testing.T) {
	now := time.Now()
	in := []models.StudySession{
		sessionOn(now.Add(-time.Hour), "Biology", 15),
		sessionOn(now.Add(-2*time.Hour), "Drama", 25),
		sessionOn(now.Add(-3*time.Hour), "Biology", 5),
	}

	got := LastNDays(in, 7, now)

	require.Len(t, got, 3)
	require.Equal(t, []string{"Biology", "Drama", "Biology"},
		[]string{got[0].Subject, got[1].Subject, got[2].Subject})
	// original slice untouched
	require.Equal(t, "Biology", in[0].Subject)
}

func TestDateRange_DayGranularityInclusive(t *testing.T) {
	from := time.Date(2026, 8, 10, 18, 45, 0, 0, time.UTC) // time-of-day must be ignored
	to := time.Date(2026, 8, 12, 1, 0, 0, 0, time.UTC)

	in := []models.StudySession{
		sessionOn(time.Date(2026, 8, 9, 23, 59, 0, 0, time.UTC), "Before", 10),
		sessionOn(time.Date(2026, 8, 10, 0, 1, 0, 0, time.UTC), "Start", 10),
		sessionOn(time.Date(2026, 8, 11, 12, 0, 0, 0, time.UTC), "Middle", 10),
		sessionOn(time.Date(2026, 8, 12, 23, 0, 0, 0, time.UTC), "End", 10),
		sessionOn(time.Date(2026, 8, 13, 0, 0, 1, 0, time.UTC), "After", 10),
	}

	got := DateRange(in, from, to)

	require.Len(t, got, 3)
	require.Equal(t, "Start", got[0].Subject)
	require.Equal(t, "Middle", got[1].Subject)
	require.Equal(t, "End", got[2].Subject)
}

func TestDateRange_ReversedRangeIsEmpty(t *testing.T) {
	in := []models.StudySession{sessionOn(time.Now(), "Maths", 30)}

	got := DateRange(in, time.Now(), time.Now().AddDate(0, 0, -1))

	require.NotNil(t, got)
	require.Empty(t, got)
}
