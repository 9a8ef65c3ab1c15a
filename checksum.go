package filets

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Checksum computes the hex-encoded SHA-256 digest of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ChecksumFile computes the hex-encoded SHA-256 digest of the file at path
// without loading it whole.
func ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", wrap(KindChecksum, path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", wrap(KindChecksum, path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
