package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hashnode-blog/readme-action/internal/utils"
)

// Local is the filesystem-backed store used outside a hosted runner.
// Writes return a content hash where the GitHub store returns a commit
// sha, so run outputs keep the same shape in both modes.
type Local struct {
	baseDir string
	log     zerolog.Logger
}

func NewLocal(baseDir string, log zerolog.Logger) *Local {
	return &Local{baseDir: baseDir, log: log}
}

func (l *Local) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := l.resolve(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		l.log.Info().Str("path", full).Msg("Document does not exist yet, starting from empty")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", full, err)
	}

	return string(data), nil
}

func (l *Local) Write(ctx context.Context, path, content, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := l.resolve(path)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory for %s: %w", full, err)
		}
	}

	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", full, err)
	}

	revision := utils.ShortHash(content)
	l.log.Info().
		Str("path", full).
		Str("revision", revision).
		Str("message", message).
		Msg("Wrote document")

	return revision, nil
}

// resolve confines path to the base directory. Validation already rejects
// traversal segments; this keeps the store safe on its own as well. The
// base is made absolute first so relative bases like "." confine rather
// than reject.
func (l *Local) resolve(path string) (string, error) {
	base, err := filepath.Abs(l.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory %s: %w", l.baseDir, err)
	}
	full := filepath.Join(base, path)
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes base directory %s", path, l.baseDir)
	}
	return full, nil
}
