package cli

import (
	"context"
	"os"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
)

// Delete removes a chosen session after an explicit confirmation.
// Nothing is removed until the user answers yes.
func (a *App) Delete(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	chosen, err := a.chooseSession("Session number to delete")
	if err != nil {
		return err
	}

	doomed, err := a.manager.RequestDelete(chosen.ID)
	if err != nil {
		return a.fail(err)
	}

	answer, err := getSimpleText(a.reader, "Delete \""+doomed.String()+"\"? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("Delete cancelled.")
		return nil
	}

	if err := a.manager.ConfirmDelete(ctx, doomed.ID); err != nil {
		return a.fail(err)
	}

	a.resetView()
	a.log.Debug(ctx, "session deleted", "user", a.manager.Username(), "subject", doomed.Subject)
	printlnFn("Session deleted.")
	return nil
}
