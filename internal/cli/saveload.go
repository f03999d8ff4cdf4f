package cli

import (
	"context"

	"github.com/studytrack/studytrack/internal/common"
)

// Save persists the current working set explicitly. Every mutation
// already persists, so this mainly reassures the user.
func (a *App) Save(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	if err := a.manager.Save(ctx); err != nil {
		return a.fail(err)
	}
	printlnFn("Sessions saved successfully.")
	return nil
}

// Load discards the working set and re-reads it from the durable store.
func (a *App) Load(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	if err := a.manager.Reload(ctx); err != nil {
		return a.fail(err)
	}

	a.resetView()
	printlnFn("Sessions loaded successfully.")
	return nil
}
