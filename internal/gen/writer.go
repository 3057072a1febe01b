package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// filePerm is the permission for generated files.
const filePerm = 0o644

// WriteFile writes a generated file into the package directory.
func WriteFile(file *GeneratedFile, dir string) error {
	outputPath := filepath.Join(dir, file.Filename)

	if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", outputPath, err)
	}

	return nil
}

// Stale reports whether the on-disk copy of a generated file is missing or
// differs from the freshly generated content. Used by the check command as a
// CI guard.
func Stale(file *GeneratedFile, dir string) (bool, error) {
	outputPath := filepath.Join(dir, file.Filename)

	existing, err := os.ReadFile(outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}

		return false, fmt.Errorf("reading file %s: %w", outputPath, err)
	}

	return !bytes.Equal(existing, file.Content), nil
}
