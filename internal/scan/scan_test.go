package scan_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magiscan/magiscan/internal/logger"
	"github.com/magiscan/magiscan/internal/magic"
	"github.com/magiscan/magiscan/internal/scan"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func testLogger() *logger.Logger {
	return logger.New(io.Discard, logger.ErrorLevel)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", []byte("%PDF-1.4"))
	writeFile(t, dir, "b.txt", []byte("%PDF-1.4"))
	writeFile(t, dir, "c.bin", []byte{0x00, 0x01})

	det := magic.NewDetector(nil, 0)

	results, err := scan.Scan(dir, det, scan.Options{}, testLogger())
	require.NoError(t, err)
	require.Len(t, results, 3)

	// ReadDir order is lexical, keeping batches deterministic.
	require.Equal(t, filepath.Join(dir, "a.pdf"), results[0].Path)
	require.False(t, results[0].Mismatch)
	require.True(t, results[1].Mismatch)
	require.False(t, results[2].Mismatch)
	require.Empty(t, results[2].DetectedType)
}

func TestScan_NonRecursiveSkipsSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.pdf", []byte("%PDF-1.4"))
	writeFile(t, dir, filepath.Join("sub", "nested.pdf"), []byte("%PDF-1.4"))

	det := magic.NewDetector(nil, 0)

	results, err := scan.Scan(dir, det, scan.Options{}, testLogger())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, filepath.Join(dir, "top.pdf"), results[0].Path)
}

func TestScan_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.pdf", []byte("%PDF-1.4"))
	writeFile(t, dir, filepath.Join("sub", "nested.pdf"), []byte("%PDF-1.4"))
	writeFile(t, dir, filepath.Join("sub", "deep", "leaf.txt"), []byte("%PDF-1.4"))

	det := magic.NewDetector(nil, 0)

	results, err := scan.Scan(dir, det, scan.Options{Recursive: true}, testLogger())
	require.NoError(t, err)
	require.Len(t, results, 3)

	mismatches := 0
	for _, r := range results {
		if r.Mismatch {
			mismatches++
		}
	}
	require.Equal(t, 1, mismatches)
}

func TestScan_IncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", []byte("%PDF-1.4"))
	writeFile(t, dir, "b.txt", []byte("hello"))
	writeFile(t, dir, filepath.Join("sub", "c.pdf"), []byte("%PDF-1.4"))
	writeFile(t, dir, filepath.Join("sub", "skip.pdf"), []byte("%PDF-1.4"))

	det := magic.NewDetector(nil, 0)

	results, err := scan.Scan(dir, det, scan.Options{
		Recursive: true,
		Include:   []string{"**/*.pdf", "*.pdf"},
		Exclude:   []string{"skip.pdf"},
	}, testLogger())
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		require.Equal(t, "pdf", r.ClaimedExt)
		require.NotContains(t, r.Path, "skip")
	}
}

func TestScan_MissingDirectory(t *testing.T) {
	det := magic.NewDetector(nil, 0)

	_, err := scan.Scan(filepath.Join(t.TempDir(), "nope"), det, scan.Options{}, testLogger())
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestScan_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", []byte("x"))

	det := magic.NewDetector(nil, 0)

	_, err := scan.Scan(filepath.Join(dir, "file.txt"), det, scan.Options{}, testLogger())
	require.ErrorIs(t, err, scan.ErrNotADir)
}

func TestScan_EmptyDirectory(t *testing.T) {
	det := magic.NewDetector(nil, 0)

	results, err := scan.Scan(t.TempDir(), det, scan.Options{}, testLogger())
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestGenSessionID_Unique(t *testing.T) {
	a := scan.GenSessionID()
	b := scan.GenSessionID()

	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}
