//go:build !release

package resources

const configDir = ".wheelwriter"

func resourcePath() (string, error) {
	return configDir, nil
}
