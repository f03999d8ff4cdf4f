package report

import (
	"fmt"
	"strings"

	"github.com/studytrack/studytrack/internal/models"
)

// SubjectTotal is one aggregation group: a subject and its summed minutes.
// The same pairs feed the text report and the chart series, so the two can
// never disagree.
type SubjectTotal struct {
	Subject string
	Minutes int
}

// Summarize groups sessions by exact subject string and sums their minutes.
// Group order follows the first occurrence of each subject in the input,
// which keeps report and chart rendering deterministic.
func Summarize(sessions []models.StudySession) []SubjectTotal {
	index := make(map[string]int, len(sessions))
	totals := make([]SubjectTotal, 0, len(sessions))

	for _, s := range sessions {
		i, ok := index[s.Subject]
		if !ok {
			index[s.Subject] = len(totals)
			totals = append(totals, SubjectTotal{Subject: s.Subject})
			i = len(totals) - 1
		}
		totals[i].Minutes += s.Minutes
	}
	return totals
}

// TextReport renders one line per subject: "{subject}: {total} minutes".
func TextReport(totals []SubjectTotal) string {
	var b strings.Builder
	for _, t := range totals {
		fmt.Fprintf(&b, "%s: %d minutes\n", t.Subject, t.Minutes)
	}
	return b.String()
}

// BarChart renders totals as a horizontal bar chart scaled to maxWidth
// characters for the largest total.
func BarChart(totals []SubjectTotal, maxWidth int) string {
	maxTotal := 0
	labelWidth := 0
	for _, t := range totals {
		if t.Minutes > maxTotal {
			maxTotal = t.Minutes
		}
		if len(t.Subject) > labelWidth {
			labelWidth = len(t.Subject)
		}
	}
	if maxTotal == 0 {
		return ""
	}

	var b strings.Builder
	for _, t := range totals {
		width := t.Minutes * maxWidth / maxTotal
		if width == 0 && t.Minutes > 0 {
			width = 1
		}
		fmt.Fprintf(&b, "%-*s %s %d\n", labelWidth, t.Subject, strings.Repeat("#", width), t.Minutes)
	}
	return b.String()
}
