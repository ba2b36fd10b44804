package store

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Checksum identifies the contents of the source sheet. Equal contents give
// equal strings; the value is 16 lowercase hex digits.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("store: checksum %s: %w", path, err)
	}
	defer f.Close()

	sum, err := digest(f)
	if err != nil {
		return "", fmt.Errorf("store: checksum %s: %w", path, err)
	}
	return sum, nil
}

func digest(r io.Reader) (string, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", d.Sum64()), nil
}
