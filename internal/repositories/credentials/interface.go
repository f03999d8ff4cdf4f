// Package credentials persists the username → secret mapping backing
// registration and login.
package credentials

import "context"

// Store describes operations over the durable credential list.
// Implementations are backed by a local plain-text file.
type Store interface {
	// Append adds a new (username, secret) pair. It creates the durable
	// store if absent and never overwrites an existing pair; duplicate
	// checks are the caller's responsibility.
	Append(ctx context.Context, username, secret string) error

	// Lookup returns the stored secret for username, or ErrNotFound.
	Lookup(ctx context.Context, username string) (string, error)

	// Exists reports whether a username is already registered.
	Exists(ctx context.Context, username string) (bool, error)
}
