package filesink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresFilename(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestAppend_PersistsAndReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	s, err := New(Config{Filename: path})
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Append([]byte("<I> hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	size, known := s.PersistedSize()
	assert.True(t, known)
	assert.Equal(t, int64(10), size)

	_, known = s.PersistedCapacity()
	assert.False(t, known, "unbounded file reported a capacity")

	require.NoError(t, s.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<I> hello\n", string(data))
}

func TestAppend_AppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	s, err := New(Config{Filename: path})
	require.NoError(t, err)

	_, err = s.Append([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))

	size, _ := s.PersistedSize()
	assert.Equal(t, int64(8), size)
}

func TestAppend_SyncEveryAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	s, err := New(Config{Filename: path, SyncEveryAppend: true})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Append([]byte("durable\n"))
	require.NoError(t, err)

	// Bytes are on disk before Close.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "durable\n", string(data))
}

func TestRotation_BySize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")
	s, err := New(Config{Filename: path, MaxSize: 16, SyncEveryAppend: true})
	require.NoError(t, err)
	defer s.Close()

	capacity, known := s.PersistedCapacity()
	assert.True(t, known)
	assert.Equal(t, int64(16), capacity)

	_, err = s.Append([]byte("0123456789abcdef"))
	require.NoError(t, err)

	// The next append must rotate first.
	_, err = s.Append([]byte("fresh\n"))
	require.NoError(t, err)

	size, _ := s.PersistedSize()
	assert.Equal(t, int64(6), size)

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	rotated, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", string(rotated))
}

func TestRotation_MaxBackupsPrunes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")
	s, err := New(Config{Filename: path, MaxSize: 4, MaxBackups: 1, SyncEveryAppend: true})
	require.NoError(t, err)
	defer s.Close()

	// Each append fills the file; rotations use second-resolution
	// timestamps, so space them out.
	for i := 0; i < 3; i++ {
		_, err = s.Append([]byte("xxxx"))
		require.NoError(t, err)
		time.Sleep(1100 * time.Millisecond)
	}

	matches, err := filepath.Glob(path + ".*")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), 1)
}
