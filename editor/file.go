package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iw2rmb/vellum/internal/logger"
)

// LoadFile reads path for editing. Carriage returns are stripped so CRLF
// files edit cleanly; Save does not put them back. A missing file is not an
// error: editing starts from an empty document and the file is created on
// the first save.
func LoadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("opening new file", "path", path)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.ReplaceAll(string(raw), "\r", ""), nil
}

// SaveFile writes text to path verbatim: no trailing newline is added and
// stripped carriage returns are not restored.
func SaveFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
