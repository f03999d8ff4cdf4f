// Package services contains the application services of StudyTrack:
// credential handling, session input validation, and the session manager
// owning the authenticated user's working set.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/repositories/credentials"
)

// AuthService defines registration and login over the credential store.
//
// Contract:
//   - Register: add a new user; the only mutator of the credential store.
//   - Authenticate: check a (username, password) pair.
//   - UsernameExists: pure lookup, no mutation.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Authenticate(ctx context.Context, username string, password []byte) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}

type authService struct {
	store    credentials.Store
	verifier Verifier
}

// NewAuthService constructs an AuthService over the given store. The
// verifier decides the stored credential form (plain text or hash).
func NewAuthService(store credentials.Store, verifier Verifier) AuthService {
	return &authService{store: store, verifier: verifier}
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return common.ErrMissingField
	}
	// The username names the per-user session file and prefixes each
	// credential line, so it must stay delimiter- and path-safe.
	if strings.ContainsAny(username, models.FieldDelimiter+`/\`) || username == ".." {
		return fmt.Errorf("username %q: %w", username, common.ErrInvalidUsername)
	}

	exists, err := a.store.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("checking username: %w", err)
	}
	if exists {
		return common.ErrDuplicateUser
	}

	secret, err := a.verifier.Seal(password)
	if err != nil {
		return fmt.Errorf("sealing password: %w", err)
	}
	if err := a.store.Append(ctx, username, secret); err != nil {
		return fmt.Errorf("storing credential: %w", err)
	}
	return nil
}

func (a *authService) Authenticate(ctx context.Context, username string, password []byte) error {
	secret, err := a.store.Lookup(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("reading credential store: %w", err)
	}
	if !a.verifier.Verify(secret, password) {
		return common.ErrInvalidCredentials
	}
	return nil
}

func (a *authService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return a.store.Exists(ctx, strings.TrimSpace(username))
}
