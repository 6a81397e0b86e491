package resources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Read returns the content of a file in the resource directory. The board
// state and the window settings are kept there. A file that has never been
// written is not an error and the empty string is returned.
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("resources: %w", err)
	}

	return string(b), nil
}

// Write replaces the content of a file in the resource directory. The new
// content is written alongside and then renamed so that a board switched off
// part way through a save still has the previous state.
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(pth), filepath.Base(pth)+".*")
	if err != nil {
		return fmt.Errorf("resources: %w", err)
	}
	tmp := f.Name()

	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, pth)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("resources: %s: %w", filename, err)
	}

	return nil
}
