// Package hash derives snapshot identifiers from file content.
package hash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/zeebo/xxh3"
)

const (
	SHA256 = "sha256"
	XXH3   = "xxh3"

	Default = SHA256
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithms lists the accepted algorithm names.
var Algorithms = []string{SHA256, XXH3}

// Hasher maps a byte sequence to a fixed-length lowercase hex identifier.
type Hasher struct {
	algo string
}

// New returns a Hasher for the named algorithm. An empty name selects Default.
func New(algo string) (*Hasher, error) {
	switch algo {
	case "":
		return &Hasher{algo: Default}, nil
	case SHA256, XXH3:
		return &Hasher{algo: algo}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
}

// Must is like New but panics on an unknown algorithm.
func Must(algo string) *Hasher {
	h, err := New(algo)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hasher) Algorithm() string { return h.algo }

// Sum hashes data. The empty input is valid.
func (h *Hasher) Sum(data []byte) string {
	if h.algo == XXH3 {
		b := xxh3.Hash128(data).Bytes()
		return fmt.Sprintf("%x", b)
	}
	b := sha256.Sum256(data)
	return fmt.Sprintf("%x", b)
}

// SumReader hashes everything read from r and yields the same
// identifier Sum would for the same bytes.
func (h *Hasher) SumReader(r io.Reader) (string, error) {
	if h.algo == XXH3 {
		x := xxh3.New()
		if _, err := io.Copy(x, r); err != nil {
			return "", fmt.Errorf("hash stream: %w", err)
		}
		b := x.Sum128().Bytes()
		return fmt.Sprintf("%x", b), nil
	}
	s := sha256.New()
	if _, err := io.Copy(s, r); err != nil {
		return "", fmt.Errorf("hash stream: %w", err)
	}
	return fmt.Sprintf("%x", s.Sum(nil)), nil
}
