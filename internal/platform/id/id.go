// Package id generates document identities for stores that do not assign
// their own.
//
// Identities are random UUIDv4 bytes encoded as lowercase base32 (RFC 4648)
// without padding, giving 26-character keys that are safe inside document
// paths.
package id

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a new random document identity.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(value[:])), nil
}
