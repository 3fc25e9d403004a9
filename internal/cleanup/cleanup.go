// Package cleanup deletes temporary uploads left over from earlier sessions.
package cleanup

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/asteroid-belt/ymstat/internal/log"
	"github.com/asteroid-belt/ymstat/internal/models"
)

// DeleteRequest identifies one file to delete.
type DeleteRequest struct {
	FileID   string            `json:"file_id"`
	Filepath string            `json:"filepath"`
	Source   models.FileSource `json:"source"`
	Embedded bool              `json:"embedded"`
}

// Store holds the queue of pending files.
type Store interface {
	PendingFiles() (map[string]models.PendingFile, error)
	RemovePendingFiles(fileIDs []string) error
}

// Deleter removes files. The transport behind it is up to the caller.
// Delete returns the ids of the files it handled; files it did not
// handle stay queued.
type Deleter interface {
	Delete(ctx context.Context, files []DeleteRequest) ([]string, error)
}

// Decode parses a persisted map of pending files keyed by file id.
// An empty input is treated as an empty map.
func Decode(raw string) (map[string]models.PendingFile, error) {
	if raw == "" {
		raw = "{}"
	}
	var files map[string]models.PendingFile
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		return nil, fmt.Errorf("parse pending files: %w", err)
	}
	if files == nil {
		files = map[string]models.PendingFile{}
	}
	return files, nil
}

// Select returns delete requests for files that are safe to remove:
// they have a path, a source and a temp file id, and are not embedded.
// Results are ordered by file id.
func Select(files map[string]models.PendingFile) []DeleteRequest {
	out := make([]DeleteRequest, 0, len(files))
	for _, f := range files {
		if f.Filepath == nil || f.Source == "" || f.TempFileID == "" {
			continue
		}
		if f.Embedded != nil && *f.Embedded {
			continue
		}
		out = append(out, DeleteRequest{
			FileID:   f.FileID,
			Filepath: *f.Filepath,
			Source:   f.Source,
			Embedded: false,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileID < out[j].FileID })
	return out
}

// Run deletes the selected pending files. On success it removes the handled
// files and the never-eligible ones from the queue; selected files the
// deleter skipped stay queued. On a failed delete the whole queue is kept.
// It returns the number of files the deleter handled.
func Run(ctx context.Context, store Store, deleter Deleter) (int, error) {
	pending, err := store.PendingFiles()
	if err != nil {
		return 0, fmt.Errorf("load pending files: %w", err)
	}

	files := Select(pending)
	if len(files) == 0 {
		return 0, nil
	}

	handled, err := deleter.Delete(ctx, files)
	if err != nil {
		return 0, fmt.Errorf("delete temporary files: %w", err)
	}
	log.Debugf("temporary files deleted: %d of %d selected", len(handled), len(files))

	remove := settled(pending, files, handled)
	if len(remove) == 0 {
		return len(handled), nil
	}
	if err := store.RemovePendingFiles(remove); err != nil {
		return len(handled), fmt.Errorf("remove pending files: %w", err)
	}
	return len(handled), nil
}

// settled returns the queued ids that no later run needs: handled files and
// files that are never eligible for deletion. Selected files the deleter
// skipped are left out so they stay queued.
func settled(pending map[string]models.PendingFile, selected []DeleteRequest, handled []string) []string {
	keep := make(map[string]bool, len(selected))
	for _, r := range selected {
		keep[r.FileID] = true
	}
	for _, id := range handled {
		keep[id] = false
	}

	ids := make([]string, 0, len(pending))
	for id := range pending {
		if !keep[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
