package state

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
)

// ComputeSessionID computes a stable session ID from a document path.
// The path is cleaned first so equivalent spellings share a session.
func ComputeSessionID(documentPath string) string {
	hash := sha256.Sum256([]byte(filepath.Clean(documentPath)))
	return hex.EncodeToString(hash[:])
}
