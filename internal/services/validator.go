package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
	"github.com/studytrack/studytrack/internal/models"
)

// Vocabulary is an ordered list of approved values with case-insensitive
// lookup that canonicalizes to the approved spelling.
type Vocabulary []string

// Canonical returns the approved spelling for s, matching
// case-insensitively, and whether s is approved at all.
func (v Vocabulary) Canonical(s string) (string, bool) {
	for _, approved := range v {
		if strings.EqualFold(approved, s) {
			return approved, true
		}
	}
	return "", false
}

// ValidatedFields is the outcome of a successful validation: canonical
// subject and category spellings and the parsed minute count.
type ValidatedFields struct {
	Subject  string
	Category string
	Minutes  int
}

// Validator enforces the input constraints shared by the add and edit
// paths. Validation is pure: no side effects, same rules everywhere.
type Validator struct {
	subjects   Vocabulary
	categories Vocabulary
}

// NewValidator builds a Validator from the configured vocabularies.
// Entries containing the record field delimiter can never be stored
// safely and are dropped.
func NewValidator(subjects, categories []string) *Validator {
	return &Validator{
		subjects:   sanitize(subjects),
		categories: sanitize(categories),
	}
}

func sanitize(values []string) Vocabulary {
	out := make(Vocabulary, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || strings.Contains(v, models.FieldDelimiter) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Validate applies the rules in order, first failure wins:
// non-empty fields, positive integer minutes, approved subject,
// approved category.
func (v *Validator) Validate(subject, category, minutesText string) (ValidatedFields, error) {
	subject = strings.TrimSpace(subject)
	category = strings.TrimSpace(category)
	minutesText = strings.TrimSpace(minutesText)

	if subject == "" || category == "" || minutesText == "" {
		return ValidatedFields{}, common.ErrMissingField
	}

	minutes, err := strconv.Atoi(minutesText)
	if err != nil || minutes <= 0 {
		return ValidatedFields{}, fmt.Errorf("%q is not a positive number of minutes: %w", minutesText, common.ErrInvalidMinutes)
	}

	canonicalSubject, ok := v.subjects.Canonical(subject)
	if !ok {
		return ValidatedFields{}, fmt.Errorf("subject %q: %w", subject, common.ErrUnapprovedSubject)
	}

	canonicalCategory, ok := v.categories.Canonical(category)
	if !ok {
		return ValidatedFields{}, fmt.Errorf("category %q: %w", category, common.ErrUnapprovedCategory)
	}

	return ValidatedFields{Subject: canonicalSubject, Category: canonicalCategory, Minutes: minutes}, nil
}

// Subjects returns the approved subject vocabulary.
func (v *Validator) Subjects() Vocabulary { return v.subjects }

// Categories returns the approved category vocabulary.
func (v *Validator) Categories() Vocabulary { return v.categories }
