package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Account identifies a wallet-backed participant: category owner, buyer,
// delegate or the platform itself.
type Account string

func (a Account) String() string { return string(a) }

// IsZero reports whether the account is empty after normalization.
func (a Account) IsZero() bool { return NormalizeAccount(a) == "" }

// ContentHashSize is the byte length of a content reference.
const ContentHashSize = 32

// ContentHash references the licensed payload. The payload itself is never
// stored by the engine.
type ContentHash [ContentHashSize]byte

// HashContent returns the Keccak-256 digest of data.
func HashContent(data []byte) ContentHash {
	var h ContentHash
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	d.Sum(h[:0])
	return h
}

// ParseContentHash decodes a 64-digit hex string with optional 0x prefix.
func ParseContentHash(s string) (ContentHash, error) {
	var h ContentHash
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s) != ContentHashSize*2 {
		return h, fmt.Errorf("content hash: want %d hex digits, got %d", ContentHashSize*2, len(s))
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, fmt.Errorf("content hash: %w", err)
	}
	return h, nil
}

// ContentHashFromBytes copies b into a ContentHash. b must be exactly 32 bytes.
func ContentHashFromBytes(b []byte) (ContentHash, error) {
	var h ContentHash
	if len(b) != ContentHashSize {
		return h, fmt.Errorf("content hash: want %d bytes, got %d", ContentHashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (h ContentHash) String() string { return "0x" + hex.EncodeToString(h[:]) }

// IsZero reports whether no hash was set.
func (h ContentHash) IsZero() bool { return h == ContentHash{} }
