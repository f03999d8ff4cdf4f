package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
)

// Add prompts for the session fields and appends a session stamped with
// the current time.
func (a *App) Add(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	subject, err := getSimpleText(a.reader, "Enter subject", os.Stdout)
	if err != nil {
		return err
	}
	categories := strings.Join(a.validator.Categories(), ", ")
	category, err := getSimpleText(a.reader, fmt.Sprintf("Enter category (%s)", categories), os.Stdout)
	if err != nil {
		return err
	}
	minutes, err := getSimpleText(a.reader, "Enter minutes", os.Stdout)
	if err != nil {
		return err
	}

	added, err := a.manager.Add(ctx, subject, category, minutes)
	if err != nil {
		return a.fail(err)
	}

	a.resetView()
	a.log.Debug(ctx, "session added", "user", a.manager.Username(), "subject", added.Subject, "minutes", added.Minutes)
	printlnFn("Session added:", added.String())
	return nil
}
