package domain

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

// ID identifies an entity. The canonical form is 24 lowercase hex characters:
// a 4-byte creation timestamp followed by 8 random bytes. The string kind
// lets database/sql scan and bind IDs without custom valuers.
type ID string

// idPattern matches the canonical ID form.
var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewID generates a fresh ID.
func NewID() ID {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Sprintf("failed to read random bytes for ID: %v", err))
	}
	return ID(hex.EncodeToString(b[:]))
}

// ParseID validates that s is a well-formed ID. Returns ErrInvalidID
// otherwise; a malformed ID is a validation failure, not a lookup miss.
func ParseID(s string) (ID, error) {
	if !idPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(s), nil
}

// String returns the ID's canonical string form.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}
