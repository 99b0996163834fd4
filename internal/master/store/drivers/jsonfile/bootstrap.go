package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ensureFromTemplate copies template to path when path does not exist yet.
// This lets a fresh, empty data volume start from the bundled documents.
// An existing path is never touched. An empty template disables the copy.
func ensureFromTemplate(path, template string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if template == "" {
		return nil
	}

	data, err := os.ReadFile(template)
	if err != nil {
		return fmt.Errorf("read template %s: %w", template, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := writeFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("copy template %s to %s: %w", template, path, err)
	}
	return nil
}
