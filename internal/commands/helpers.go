package commands

import (
	"crypto/sha256"
	"fmt"
	"path/filepath"
)

// computeTargetHash generates a SHA256 hash identifying the analyzed pack.
func computeTargetHash(inputDir string) string {
	abs, err := filepath.Abs(inputDir)
	if err != nil {
		abs = inputDir
	}
	h := sha256.Sum256([]byte("audit-pack:" + abs))
	return fmt.Sprintf("sha256:%x", h)
}
