// Package hash provides content checksums for change detection.
//
// elemlist records the checksum of a document when a drag starts and
// compares it when the drag ends, so a document edited by someone else in
// the meantime is not silently overwritten with a stale order.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher computes checksums of document contents.
type Hasher interface {
	// Sum returns the checksum of data.
	Sum(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum returns the hex-encoded SHA-256 of data.
func (h *SHA256Hasher) Sum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with caller-controlled checksums for testing.
type FakeHasher struct {
	sums map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		sums: make(map[string]string),
	}
}

// SetSum makes Sum return sum for exactly this content.
func (h *FakeHasher) SetSum(data []byte, sum string) {
	h.sums[string(data)] = sum
}

// Sum returns the predetermined checksum for data, or the data itself.
func (h *FakeHasher) Sum(data []byte) string {
	if sum, ok := h.sums[string(data)]; ok {
		return sum
	}
	return "fake:" + string(data)
}
