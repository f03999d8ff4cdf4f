package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/studytrack/studytrack/internal/common"
)

// delimiter separates the username from the secret on each stored line.
// The secret itself may contain the delimiter: lines are split on the
// first occurrence only, which keeps the comparison equivalent to matching
// the whole literal line.
const delimiter = ","

// FileStore keeps one "username,secret" line per user in a single file,
// appended on registration and scanned in full on lookup.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(ctx context.Context, username, secret string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s%s%s\n", username, delimiter, secret); err != nil {
		return fmt.Errorf("append credential: %w", err)
	}
	return nil
}

func (s *FileStore) Lookup(ctx context.Context, username string) (string, error) {
	lines, err := s.readLines()
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		name, secret, ok := strings.Cut(line, delimiter)
		if ok && name == username {
			return secret, nil
		}
	}
	return "", common.ErrNotFound
}

func (s *FileStore) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.Lookup(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *FileStore) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credential store: %w", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}
