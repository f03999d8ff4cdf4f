package cli

import (
	"context"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/report"
)

const chartWidth = 40

// Summary prints total minutes per subject for the current display list.
func (a *App) Summary(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	totals := report.Summarize(a.currentView())
	if len(totals) == 0 {
		printlnFn("No sessions to summarize.")
		return nil
	}

	printlnFn("Summary:")
	printlnFn(report.TextReport(totals))
	return nil
}

// Chart renders the same totals as a horizontal bar chart.
func (a *App) Chart(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	totals := report.Summarize(a.currentView())
	if len(totals) == 0 {
		printlnFn("No sessions to chart.")
		return nil
	}

	printlnFn(report.BarChart(totals, chartWidth))
	return nil
}
