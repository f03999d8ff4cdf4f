// Package cli implements the interactive StudyTrack shell: a REPL over
// the auth service and the session manager, plus the prompt helpers the
// commands share.
package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/logging"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/repositories/credentials"
	"github.com/studytrack/studytrack/internal/repositories/sessions"
	"github.com/studytrack/studytrack/internal/services"
)

// App wires the services together and carries the per-process UI state:
// the logged-in user's session manager and the currently displayed view
// (full set or a filter result).
type App struct {
	cfg       *config.Config
	log       logging.Logger
	auth      services.AuthService
	repo      sessions.Repository
	validator *services.Validator
	manager   *services.SessionManager
	reader    *bufio.Reader

	// view is the filtered display list; nil means the full set.
	// Mutations always reset it, so a stale filter can never be shown
	// or, worse, used to address a session.
	view      []models.StudySession
	viewLabel string
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	var verifier services.Verifier = services.PlainVerifier{}
	if cfg.HashPasswords {
		verifier = services.Argon2Verifier{}
	}

	store := credentials.NewFileStore(cfg.UsersPath())

	return &App{
		cfg:       cfg,
		log:       log,
		auth:      services.NewAuthService(store, verifier),
		repo:      sessions.NewFileRepository(cfg.DataDir),
		validator: services.NewValidator(cfg.Subjects, cfg.Categories),
		reader:    bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to StudyTrack (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.manager != nil
}

func (a *App) status() string {
	if a.manager == nil {
		return "not logged in"
	}
	s := a.manager.Username()
	if a.viewLabel != "" {
		s += ", " + a.viewLabel
	}
	return s
}

// currentView returns the display list: the active filter result, or the
// full set, recomputed from the manager on every call.
func (a *App) currentView() []models.StudySession {
	if a.view != nil {
		return a.view
	}
	if a.manager == nil {
		return nil
	}
	return a.manager.Sessions()
}

func (a *App) resetView() {
	a.view = nil
	a.viewLabel = ""
}

// sessionAt resolves a 1-based position in the current display list to
// the session's stable ID. Mutations then address the full set by that
// ID, so a filtered view can never cause an index-shift bug.
func (a *App) sessionAt(pos int) (models.StudySession, error) {
	view := a.currentView()
	if pos < 1 || pos > len(view) {
		return models.StudySession{}, common.ErrOutOfRange
	}
	return view[pos-1], nil
}

// userMessage maps a core error onto the single message shown in the UI.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingField):
		return "Please fill in all fields."
	case errors.Is(err, common.ErrInvalidMinutes):
		return "Enter a valid number of minutes."
	case errors.Is(err, common.ErrUnapprovedSubject):
		return "Invalid subject. Please enter an approved subject."
	case errors.Is(err, common.ErrUnapprovedCategory):
		return "Invalid category. Please choose an approved category."
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid login. Try again."
	case errors.Is(err, common.ErrDuplicateUser):
		return "Username already exists."
	case errors.Is(err, common.ErrInvalidUsername):
		return "Username contains characters that are not allowed."
	case errors.Is(err, common.ErrOutOfRange):
		return "No session with that number."
	case errors.Is(err, common.ErrSessionNotFound):
		return "That session no longer exists."
	case errors.Is(err, common.ErrNotAuthenticated):
		return "You must be logged in first."
	default:
		return err.Error()
	}
}

// fail prints the user-facing message for err and passes err through so
// command handlers can stay one-liners.
func (a *App) fail(err error) error {
	printlnFn(userMessage(err))
	return err
}
