package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
)

// Edit re-prompts the three editable fields of a chosen session, showing
// the current values. An empty reply to any prompt cancels the edit. The
// timestamp is never touched.
func (a *App) Edit(ctx context.Context) error {
	if a.manager == nil {
		return a.fail(common.ErrNotAuthenticated)
	}

	chosen, err := a.chooseSession("Session number to edit")
	if err != nil {
		return err
	}

	subject, ok, err := GetTextDefault(a.reader, "Edit subject", chosen.Subject, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Edit cancelled.")
		return nil
	}

	category, ok, err := GetTextDefault(a.reader, "Edit category", chosen.Category, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Edit cancelled.")
		return nil
	}

	minutes, ok, err := GetTextDefault(a.reader, "Edit minutes", strconv.Itoa(chosen.Minutes), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Edit cancelled.")
		return nil
	}

	edited, err := a.manager.Edit(ctx, chosen.ID, subject, category, minutes)
	if err != nil {
		return a.fail(err)
	}

	a.resetView()
	printlnFn("Session updated:", edited.String())
	return nil
}

// chooseSession prompts for a 1-based number in the current display list
// and resolves it to the session itself; mutations then address its
// stable ID against the full set.
func (a *App) chooseSession(prompt string) (models.StudySession, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return models.StudySession{}, err
	}
	pos, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return models.StudySession{}, a.fail(common.ErrOutOfRange)
	}

	s, err := a.sessionAt(pos)
	if err != nil {
		return models.StudySession{}, a.fail(err)
	}
	return s, nil
}
