package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenClose_PublishesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	s, err := Open(path, nil)
	require.NoError(t, err)

	_, err = s.Write([]byte("hello"))
	require.NoError(t, err)

	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	_, err = os.Stat(path + ".new")
	require.True(t, os.IsNotExist(err), "the .new file should be gone after Close")
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.txt")

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestClose_PreservesPreviousGenerationUntilRenamed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("generation one"), 0o644))

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Write([]byte("generation two"))
	require.NoError(t, err)

	// Before Close, the published path still holds the old generation.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "generation one", string(data))

	require.NoError(t, s.Close())

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "generation two", string(data))
}

func TestAbort_RemovesTempFileAndLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, s.Abort())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "original", string(data))

	_, err = os.Stat(path + ".new")
	require.True(t, os.IsNotExist(err))
}
