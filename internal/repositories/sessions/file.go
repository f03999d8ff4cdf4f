package sessions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studytrack/studytrack/internal/models"
)

// FileRepository stores each user's sessions in <username>_sessions.txt
// inside dir, one record per line.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) path(username string) string {
	return filepath.Join(r.dir, username+"_sessions.txt")
}

func (r *FileRepository) Load(ctx context.Context, username string) ([]models.StudySession, error) {
	data, err := os.ReadFile(r.path(username))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.StudySession{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return []models.StudySession{}, nil
	}

	out := []models.StudySession{}
	for i, line := range strings.Split(text, "\n") {
		s, err := models.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, username string, sessions []models.StudySession) error {
	var b strings.Builder
	for _, s := range sessions {
		b.WriteString(s.Record())
		b.WriteByte('\n')
	}

	// Write to a temp file in the same directory and rename over the
	// target, so an interrupted save never leaves a torn record set.
	tmp, err := os.CreateTemp(r.dir, username+"_sessions.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path(username)); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
