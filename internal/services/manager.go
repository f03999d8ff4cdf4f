package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/repositories/sessions"
)

// SessionManager owns the in-memory session set of exactly one
// authenticated user. It is constructed on login and discarded on
// logout or re-login, so no two users' sets are ever resident together.
//
// Mutations address sessions by their stable ID, never by position in a
// (possibly filtered) display list, and every mutation persists the whole
// set before returning.
type SessionManager struct {
	username  string
	repo      sessions.Repository
	validator *Validator
	sessions  []models.StudySession

	// now is a test seam for session timestamps.
	now func() time.Time
}

// NewSessionManager loads the user's durable record set and returns a
// manager over it. A malformed durable record fails construction.
func NewSessionManager(ctx context.Context, repo sessions.Repository, validator *Validator, username string) (*SessionManager, error) {
	m := &SessionManager{
		username:  username,
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
	if err := m.Reload(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Username returns the owner of this working set.
func (m *SessionManager) Username() string { return m.username }

// Sessions returns a copy of the full working set in insertion order.
func (m *SessionManager) Sessions() []models.StudySession {
	out := make([]models.StudySession, len(m.sessions))
	copy(out, m.sessions)
	return out
}

// Add validates the raw fields, appends a session stamped with the
// current time, and persists the whole set.
func (m *SessionManager) Add(ctx context.Context, subject, category, minutesText string) (models.StudySession, error) {
	fields, err := m.validator.Validate(subject, category, minutesText)
	if err != nil {
		return models.StudySession{}, err
	}

	s := models.NewStudySession(m.now(), fields.Subject, fields.Category, fields.Minutes)
	m.sessions = append(m.sessions, s)

	if err := m.persist(ctx); err != nil {
		return models.StudySession{}, err
	}
	return s, nil
}

// Edit validates the new fields with the same rules as Add and applies
// them to the identified session in place. The original timestamp is
// preserved.
func (m *SessionManager) Edit(ctx context.Context, id, subject, category, minutesText string) (models.StudySession, error) {
	i, err := m.indexOf(id)
	if err != nil {
		return models.StudySession{}, err
	}

	fields, err := m.validator.Validate(subject, category, minutesText)
	if err != nil {
		return models.StudySession{}, err
	}

	m.sessions[i].Subject = fields.Subject
	m.sessions[i].Category = fields.Category
	m.sessions[i].Minutes = fields.Minutes

	if err := m.persist(ctx); err != nil {
		return models.StudySession{}, err
	}
	return m.sessions[i], nil
}

// RequestDelete is the first half of the two-phase delete: it resolves
// the session so the caller can show it in a confirmation prompt.
// Nothing is removed until ConfirmDelete.
func (m *SessionManager) RequestDelete(id string) (models.StudySession, error) {
	i, err := m.indexOf(id)
	if err != nil {
		return models.StudySession{}, err
	}
	return m.sessions[i], nil
}

// ConfirmDelete removes the identified session and persists the whole
// remaining set.
func (m *SessionManager) ConfirmDelete(ctx context.Context, id string) error {
	i, err := m.indexOf(id)
	if err != nil {
		return err
	}
	m.sessions = append(m.sessions[:i], m.sessions[i+1:]...)
	return m.persist(ctx)
}

// Save persists the current working set unchanged.
func (m *SessionManager) Save(ctx context.Context) error {
	return m.persist(ctx)
}

// Reload discards the working set and re-reads it from the durable store.
func (m *SessionManager) Reload(ctx context.Context) error {
	loaded, err := m.repo.Load(ctx, m.username)
	if err != nil {
		return fmt.Errorf("loading sessions for %s: %w", m.username, err)
	}
	m.sessions = loaded
	return nil
}

func (m *SessionManager) persist(ctx context.Context) error {
	if err := m.repo.SaveAll(ctx, m.username, m.sessions); err != nil {
		return fmt.Errorf("saving sessions for %s: %w", m.username, err)
	}
	return nil
}

func (m *SessionManager) indexOf(id string) (int, error) {
	for i, s := range m.sessions {
		if s.ID == id {
			return i, nil
		}
	}
	return 0, common.ErrSessionNotFound
}
