// Package archive implements compressed on-disk persistence of solve runs
// for github.com/katalvlaran/gridpack.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpack/solver"
)

// ErrBadArchive indicates a file that is not a readable gridpack archive.
var ErrBadArchive = errors.New("archive: not a gridpack archive")

// Manifest identifies one archived solve run.
type Manifest struct {
	// RunID is a generated UUID, unique per Save call.
	RunID string `json:"run_id"`
	// CreatedAt is the UTC time the archive was written.
	CreatedAt time.Time `json:"created_at"`
	// Count is the total number of complete configurations discovered.
	Count int `json:"count"`
	// HighestScore is the maximum residual score among them (0 if none).
	HighestScore int `json:"highest_score"`
}

// Archive is the decoded content of one archive file. All boards are held
// in their rendered text form, exactly as the CLI prints them.
type Archive struct {
	Manifest Manifest `json:"manifest"`
	// Start is the rendered board the search began from.
	Start string `json:"start"`
	// Solutions holds every retained configuration, in discovery order.
	Solutions []string `json:"solutions"`
	// Best holds the configurations tied for HighestScore.
	Best []string `json:"best"`
}

// Save writes res to path as a zstd-compressed JSON document, creating any
// missing parent directories, and returns the manifest it stamped.
func Save(path string, res *solver.Result) (Manifest, error) {
	doc := Archive{
		Manifest: Manifest{
			RunID:        uuid.NewString(),
			CreatedAt:    time.Now().UTC(),
			Count:        res.Count,
			HighestScore: res.HighestScore(),
		},
		Start: res.Start.String(),
	}
	doc.Solutions = make([]string, 0, len(res.Solutions))
	for _, s := range res.Solutions {
		doc.Solutions = append(doc.Solutions, s.String())
	}
	best := res.Best()
	doc.Best = make([]string, 0, len(best))
	for _, b := range best {
		doc.Best = append(doc.Best, b.String())
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return Manifest{}, fmt.Errorf("archive: marshal: %w", err)
	}
	packed, err := compressZstd(raw)
	if err != nil {
		return Manifest{}, fmt.Errorf("archive: compress: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return Manifest{}, fmt.Errorf("archive: mkdir: %w", err)
		}
	}
	if err = os.WriteFile(path, packed, 0o644); err != nil {
		return Manifest{}, fmt.Errorf("archive: write: %w", err)
	}

	return doc.Manifest, nil
}

// Load reads an archive written by Save.
// Returns ErrBadArchive when the file cannot be decompressed or decoded.
func Load(path string) (*Archive, error) {
	packed, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archive: read: %w", err)
	}
	raw, err := decompressZstd(packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}
	var doc Archive
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	return &doc, nil
}
