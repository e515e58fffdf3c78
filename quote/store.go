package quote

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/folio"
)

// Load reads the quotes snapshot at path. A missing file is an empty table.
func Load(path string) (*folio.Quotes, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return folio.NewQuotes(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open quotes %q: %w", path, err)
	}
	defer f.Close()
	return folio.DecodeQuotes(f)
}

// Save writes the quotes snapshot at path, replacing it atomically.
func Save(path string, q *folio.Quotes) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".quotes-*.json")
	if err != nil {
		return fmt.Errorf("could not save quotes: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := folio.EncodeQuotes(tmp, q); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not save quotes: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
