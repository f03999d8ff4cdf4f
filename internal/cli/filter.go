package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/report"
)

const dateLayout = "2006-01-02"

// FilterWeek narrows the display list to sessions from the last 7 days.
func (a *App) FilterWeek(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	a.view = report.LastNDays(a.manager.Sessions(), 7, time.Now())
	a.viewLabel = "last 7 days"
	return a.List(ctx)
}

// FilterRange prompts for an inclusive date range and narrows the display
// list to it. A reversed range simply shows nothing.
func (a *App) FilterRange(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	from, err := a.promptDate("From date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	to, err := a.promptDate("To date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	a.view = report.DateRange(a.manager.Sessions(), from, to)
	a.viewLabel = fmt.Sprintf("%s..%s", from.Format(dateLayout), to.Format(dateLayout))
	return a.List(ctx)
}

// ShowAll clears the active filter.
func (a *App) ShowAll(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	a.resetView()
	return a.List(ctx)
}

func (a *App) promptDate(prompt string) (time.Time, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.ParseInLocation(dateLayout, text, time.Local)
	if err != nil {
		printlnFn("Enter dates as YYYY-MM-DD.")
		return time.Time{}, err
	}
	return d, nil
}
