package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact is one output file.
type Artifact struct {
	Path string
	Data []byte
}

// WriteFiles persists artifacts as a unit. Every file is first staged as a
// temporary file next to its destination; only when all are staged are they
// renamed into place. Staged files are removed on failure.
func WriteFiles(artifacts ...Artifact) (err error) {
	staged := make([]string, 0, len(artifacts))
	defer func() {
		if err != nil {
			for _, tmp := range staged {
				_ = os.Remove(tmp)
			}
		}
	}()

	for _, a := range artifacts {
		tmp, err := stage(a)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}

	for i, a := range artifacts {
		if err := os.Rename(staged[i], a.Path); err != nil {
			return fmt.Errorf("move %s into place: %w", a.Path, err)
		}
	}
	return nil
}

// stage writes a to a temporary file in the destination directory and
// returns its path.
func stage(a Artifact) (string, error) {
	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(a.Path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", a.Path, err)
	}
	name := f.Name()

	if _, err := f.Write(a.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("write %s: %w", a.Path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", fmt.Errorf("sync %s: %w", a.Path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("close %s: %w", a.Path, err)
	}
	if err := os.Chmod(name, 0644); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("chmod %s: %w", a.Path, err)
	}
	return name, nil
}
