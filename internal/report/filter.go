// Package report derives read-only views over a session sequence: relative
// and absolute time-window filters, and the subject aggregation that feeds
// both the text summary and the chart series.
package report

import (
	"time"

	"github.com/studytrack/studytrack/internal/models"
)

// LastNDays keeps sessions whose timestamp is at or after now minus n days.
// The boundary is inclusive and the original order is preserved. The input
// slice is never mutated.
func LastNDays(sessions []models.StudySession, n int, now time.Time) []models.StudySession {
	cutoff := now.AddDate(0, 0, -n)
	out := make([]models.StudySession, 0, len(sessions))
	for _, s := range sessions {
		if !s.Timestamp.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// DateRange keeps sessions whose date component lies within [from, to],
// both endpoints truncated to day granularity and inclusive. A reversed
// range (from after to) yields an empty result, not an error.
func DateRange(sessions []models.StudySession, from, to time.Time) []models.StudySession {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)

	out := make([]models.StudySession, 0, len(sessions))
	if fromDay.After(toDay) {
		return out
	}
	for _, s := range sessions {
		day := truncateToDay(s.Timestamp)
		if !day.Before(fromDay) && !day.After(toDay) {
			out = append(out, s)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
