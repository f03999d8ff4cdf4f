package cli

import (
	"context"
	"fmt"

	"github.com/studytrack/studytrack/internal/common"
)

// List prints the current display list, numbered. The numbers are what
// edit and delete prompts accept.
func (a *App) List(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	view := a.currentView()
	if len(view) == 0 {
		printlnFn("No sessions.")
		return nil
	}

	for i, s := range view {
		printlnFn(fmt.Sprintf("%d. %s", i+1, s.String()))
	}
	return nil
}
