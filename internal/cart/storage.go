package cart

import (
	"errors"
	"io/fs"
	"os"
)

// FileStorage persists the cart to a single JSON file, the embedded
// equivalent of the storefront's scoped local-storage slot.
type FileStorage struct {
	Path string
}

// Load reads the stored payload; a missing file is not an error.
func (f *FileStorage) Load() ([]byte, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return raw, err
}

// Save writes the payload atomically enough for a single-user cart.
func (f *FileStorage) Save(raw []byte) error {
	return os.WriteFile(f.Path, raw, 0o644)
}
