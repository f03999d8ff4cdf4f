package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point at the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		return a.fail(err)
	}

	printlnFn("Registration successful!")
	return nil
}

// Login prompts for credentials and, on success, replaces any previous
// user's working set with a freshly loaded one. Re-login while already
// logged in discards the old set first, so exactly one user's sessions
// are ever resident.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Authenticate(ctx, username, password); err != nil {
		return a.fail(err)
	}

	a.manager = nil
	a.resetView()

	manager, err := services.NewSessionManager(ctx, a.repo, a.validator, username)
	if err != nil {
		a.log.Error(ctx, "loading sessions failed", "user", username, "error", err)
		return a.fail(err)
	}
	a.manager = manager

	a.log.Info(ctx, "user logged in", "user", username)
	printlnFn(fmt.Sprintf("Logged in as: %s (%d sessions)", username, len(manager.Sessions())))
	return nil
}

// Logout discards the in-memory working set.
func (a *App) Logout(ctx context.Context) error {
	if a.manager != nil {
		a.log.Info(ctx, "user logged out", "user", a.manager.Username())
	}
	a.manager = nil
	a.resetView()
	printlnFn("Logged out.")
	return nil
}
