package cleanup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ymstat/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

type memStore struct {
	files   map[string]models.PendingFile
	removed []string
}

func (m *memStore) PendingFiles() (map[string]models.PendingFile, error) { return m.files, nil }

func (m *memStore) RemovePendingFiles(fileIDs []string) error {
	m.removed = append(m.removed, fileIDs...)
	for _, id := range fileIDs {
		delete(m.files, id)
	}
	return nil
}

// fakeDeleter handles every request unless err is set.
type fakeDeleter struct {
	got []DeleteRequest
	err error
}

func (f *fakeDeleter) Delete(_ context.Context, files []DeleteRequest) ([]string, error) {
	f.got = files
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]string, 0, len(files))
	for _, r := range files {
		ids = append(ids, r.FileID)
	}
	return ids, nil
}

func TestSelect(t *testing.T) {
	files := map[string]models.PendingFile{
		"keep-b":    {FileID: "keep-b", Filepath: strPtr("/b"), Source: models.FileSourceLocal, TempFileID: "t", Embedded: boolPtr(false)},
		"keep-a":    {FileID: "keep-a", Filepath: strPtr("/a"), Source: models.FileSourceS3, TempFileID: "t"},
		"no-path":   {FileID: "no-path", Source: models.FileSourceLocal, TempFileID: "t"},
		"no-source": {FileID: "no-source", Filepath: strPtr("/x"), TempFileID: "t"},
		"embedded":  {FileID: "embedded", Filepath: strPtr("/x"), Source: models.FileSourceLocal, TempFileID: "t", Embedded: boolPtr(true)},
		"not-temp":  {FileID: "not-temp", Filepath: strPtr("/x"), Source: models.FileSourceLocal},
	}

	got := Select(files)

	require.Len(t, got, 2)
	assert.Equal(t, DeleteRequest{FileID: "keep-a", Filepath: "/a", Source: models.FileSourceS3}, got[0])
	assert.Equal(t, DeleteRequest{FileID: "keep-b", Filepath: "/b", Source: models.FileSourceLocal}, got[1])
}

func TestDecode(t *testing.T) {
	files, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = Decode("null")
	require.NoError(t, err)
	assert.NotNil(t, files)

	files, err = Decode(`{"f1":{"file_id":"f1","filepath":"/uploads/f1.png","source":"local","temp_file_id":"tmp1"}}`)
	require.NoError(t, err)
	require.Contains(t, files, "f1")
	require.NotNil(t, files["f1"].Filepath)
	assert.Equal(t, "/uploads/f1.png", *files["f1"].Filepath)
	assert.Nil(t, files["f1"].Embedded)

	_, err = Decode("{not json")
	assert.Error(t, err)
}

func TestRun_NothingSelected(t *testing.T) {
	store := &memStore{files: map[string]models.PendingFile{
		"x": {FileID: "x", Source: models.FileSourceLocal},
	}}
	deleter := &fakeDeleter{}

	n, err := Run(context.Background(), store, deleter)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Nil(t, deleter.got)
	assert.Empty(t, store.removed)
}

func TestRun_RemovesHandledOnSuccess(t *testing.T) {
	store := &memStore{files: map[string]models.PendingFile{
		"x": {FileID: "x", Filepath: strPtr("/x"), Source: models.FileSourceLocal, TempFileID: "t"},
	}}
	deleter := &fakeDeleter{}

	n, err := Run(context.Background(), store, deleter)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, deleter.got, 1)
	assert.Equal(t, []string{"x"}, store.removed)
	assert.Empty(t, store.files)
}

func TestRun_KeepsQueueOnError(t *testing.T) {
	boom := errors.New("boom")
	store := &memStore{files: map[string]models.PendingFile{
		"x": {FileID: "x", Filepath: strPtr("/x"), Source: models.FileSourceLocal, TempFileID: "t"},
	}}

	n, err := Run(context.Background(), store, &fakeDeleter{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Empty(t, store.removed)
	assert.Contains(t, store.files, "x")
}

func TestRun_KeepsSkippedFilesQueued(t *testing.T) {
	store := &memStore{files: map[string]models.PendingFile{
		"local":    {FileID: "local", Filepath: strPtr("/l"), Source: models.FileSourceLocal, TempFileID: "t"},
		"remote":   {FileID: "remote", Filepath: strPtr("/r"), Source: models.FileSourceS3, TempFileID: "t"},
		"embedded": {FileID: "embedded", Filepath: strPtr("/e"), Source: models.FileSourceLocal, TempFileID: "t", Embedded: boolPtr(true)},
	}}
	deleter := &LocalDeleter{Root: t.TempDir()}

	n, err := Run(context.Background(), store, deleter)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"embedded", "local"}, store.removed)
	assert.Contains(t, store.files, "remote")
	assert.Len(t, store.files, 1)
}
