package cleanup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asteroid-belt/ymstat/internal/models"
)

// LocalDeleter removes files stored on the local disk under Root.
// Files from other sources are skipped and recorded in Skipped.
type LocalDeleter struct {
	Root    string
	Skipped []DeleteRequest
}

// Delete removes every local file and returns their ids.
// Missing files count as handled.
func (d *LocalDeleter) Delete(ctx context.Context, files []DeleteRequest) ([]string, error) {
	var (
		handled []string
		errs    []error
	)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return handled, err
		}
		if f.Source != models.FileSourceLocal {
			d.Skipped = append(d.Skipped, f)
			continue
		}

		path, err := d.resolve(f.Filepath)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.FileID, err))
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%s: %w", f.FileID, err))
			continue
		}
		handled = append(handled, f.FileID)
	}
	return handled, errors.Join(errs...)
}

// resolve maps a stored file path onto Root, refusing paths that escape it.
func (d *LocalDeleter) resolve(p string) (string, error) {
	root, err := filepath.Abs(d.Root)
	if err != nil {
		return "", err
	}
	full := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path %q is outside %s", p, root)
	}
	return full, nil
}
