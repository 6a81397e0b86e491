package resources

import (
	"os"
	"path/filepath"
)

const portableMarker = "portable.txt"

// the resource directory when portable.txt is present. set by checkPortable()
var portablePath string

// checkPortable returns true if portable.txt is next to the program binary
func checkPortable() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	dir := filepath.Dir(exe)

	if _, err := os.Stat(filepath.Join(dir, portableMarker)); err != nil {
		return false
	}

	portablePath = filepath.Join(dir, "Wheelwriter_UserData")
	return true
}
