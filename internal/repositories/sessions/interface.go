// Package sessions persists per-user study session records.
package sessions

import (
	"context"

	"github.com/studytrack/studytrack/internal/models"
)

// Repository describes load/store operations over one user's durable
// session set. Implementations are backed by a per-user local file.
type Repository interface {
	// Load returns the user's sessions in stored order. A user without a
	// durable record set yields an empty slice. A record line that does
	// not parse fails the whole load with ErrMalformedRecord and the
	// offending line number.
	Load(ctx context.Context, username string) ([]models.StudySession, error)

	// SaveAll replaces the user's entire durable record set with the
	// given sequence. The replacement is whole-file and atomic, so a
	// repeated save of the same set is byte-identical and an interrupted
	// save never leaves a torn set.
	SaveAll(ctx context.Context, username string, sessions []models.StudySession) error
}
