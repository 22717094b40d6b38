package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpack/archive"
	"github.com/katalvlaran/gridpack/board"
	"github.com/katalvlaran/gridpack/piece"
	"github.com/katalvlaran/gridpack/solver"
)

// solveFixture runs the canonical 2×2/monomino search (4 tied solutions).
func solveFixture(t *testing.T) *solver.Result {
	t.Helper()
	cells := make([]board.Cell, 4)
	for i := range cells {
		cells[i] = board.Cell{State: board.Free, Score: 1}
	}
	b, err := board.New(2, 2, cells)
	require.NoError(t, err)
	mono, err := piece.New(0, 1, 1, []piece.Cell{piece.Occupied})
	require.NoError(t, err)

	res, err := solver.Solve(b, []piece.Piece{mono}, solver.DefaultOptions())
	require.NoError(t, err)

	return res
}

// TestSaveLoad_RoundTrip writes a run and reads back identical content.
func TestSaveLoad_RoundTrip(t *testing.T) {
	res := solveFixture(t)
	path := filepath.Join(t.TempDir(), "runs", "square.gpack")

	manifest, err := archive.Save(path, res)
	require.NoError(t, err)
	require.NotEmpty(t, manifest.RunID)
	require.Equal(t, 4, manifest.Count)
	require.Equal(t, 3, manifest.HighestScore)

	got, err := archive.Load(path)
	require.NoError(t, err)
	require.Equal(t, manifest.RunID, got.Manifest.RunID)
	require.Equal(t, manifest.Count, got.Manifest.Count)
	require.Equal(t, manifest.HighestScore, got.Manifest.HighestScore)
	require.True(t, manifest.CreatedAt.Equal(got.Manifest.CreatedAt))
	require.Equal(t, res.Start.String(), got.Start)
	require.Len(t, got.Solutions, 4)
	require.Len(t, got.Best, 4)
	for i, s := range res.Solutions {
		require.Equal(t, s.String(), got.Solutions[i])
	}
}

// TestSave_UniqueRunIDs stamps every archive with a fresh identifier.
func TestSave_UniqueRunIDs(t *testing.T) {
	res := solveFixture(t)
	dir := t.TempDir()

	first, err := archive.Save(filepath.Join(dir, "a.gpack"), res)
	require.NoError(t, err)
	second, err := archive.Save(filepath.Join(dir, "b.gpack"), res)
	require.NoError(t, err)
	require.NotEqual(t, first.RunID, second.RunID)
}

// TestSave_CompressedOnDisk checks the file is zstd-framed, not raw JSON.
func TestSave_CompressedOnDisk(t *testing.T) {
	res := solveFixture(t)
	path := filepath.Join(t.TempDir(), "run.gpack")
	_, err := archive.Save(path, res)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 4)
	// zstd magic number 0x28 B5 2F FD, little-endian on the wire.
	require.Equal(t, []byte{0x28, 0xB5, 0x2F, 0xFD}, raw[:4])
}

// TestLoad_Errors distinguishes missing files from corrupt archives.
func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := archive.Load(filepath.Join(dir, "absent.gpack"))
	require.Error(t, err)
	require.NotErrorIs(t, err, archive.ErrBadArchive, "missing file is an I/O error")

	bad := filepath.Join(dir, "bad.gpack")
	require.NoError(t, os.WriteFile(bad, []byte("not compressed"), 0o644))
	_, err = archive.Load(bad)
	require.ErrorIs(t, err, archive.ErrBadArchive)
}
