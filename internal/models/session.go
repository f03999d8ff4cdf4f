// Package models defines the study session record and its durable line
// encoding.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studytrack/studytrack/internal/common"
)

// FieldDelimiter separates fields within one durable record line. Subject
// and category values containing it are never accepted by validation, so a
// stored line always splits back into exactly four fields.
const FieldDelimiter = ","

// timestampLayout round-trips an instant exactly, including its UTC offset.
const timestampLayout = time.RFC3339Nano

// StudySession is one recorded study activity.
//
// ID is a stable identifier assigned at creation (or on load) and is the
// only handle edit/delete operations address. It is in-memory identity
// only: the durable format carries the four visible fields and IDs are
// regenerated on load.
type StudySession struct {
	ID        string
	Timestamp time.Time
	Subject   string
	Category  string
	Minutes   int
}

// NewStudySession creates a session with a fresh ID.
func NewStudySession(timestamp time.Time, subject, category string, minutes int) StudySession {
	return StudySession{
		ID:        uuid.NewString(),
		Timestamp: timestamp,
		Subject:   subject,
		Category:  category,
		Minutes:   minutes,
	}
}

// Record encodes the session as one durable line:
// timestamp,subject,category,minutes.
func (s StudySession) Record() string {
	return strings.Join([]string{
		s.Timestamp.Format(timestampLayout),
		s.Subject,
		s.Category,
		strconv.Itoa(s.Minutes),
	}, FieldDelimiter)
}

// ParseRecord decodes one durable line into a session with a fresh ID.
// Any line that does not split into exactly four fields, or whose
// timestamp/minutes fields do not parse, fails with ErrMalformedRecord.
func ParseRecord(line string) (StudySession, error) {
	parts := strings.Split(line, FieldDelimiter)
	if len(parts) != 4 {
		return StudySession{}, fmt.Errorf("expected 4 fields, got %d: %w", len(parts), common.ErrMalformedRecord)
	}

	ts, err := time.Parse(timestampLayout, parts[0])
	if err != nil {
		return StudySession{}, fmt.Errorf("bad timestamp %q: %w", parts[0], common.ErrMalformedRecord)
	}

	minutes, err := strconv.Atoi(parts[3])
	if err != nil || minutes <= 0 {
		return StudySession{}, fmt.Errorf("bad minutes %q: %w", parts[3], common.ErrMalformedRecord)
	}

	return StudySession{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Subject:   parts[1],
		Category:  parts[2],
		Minutes:   minutes,
	}, nil
}

// String renders the session the way the list view shows it.
func (s StudySession) String() string {
	return fmt.Sprintf("%s - %s (%s) - %d min",
		s.Timestamp.Format("02 Jan 2006"), s.Subject, s.Category, s.Minutes)
}
