package acl

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned by DecodeACL for entries that are not hex.
var ErrInvalidEncoding = errors.New("invalid acl encoding")

// EncodeACL encodes the roles of an ACL (e.g. of an event) for storage in the
// index. Each role is hex encoded and RoleAdmin is dropped, since admins skip
// the ACL check. Input order is kept.
func EncodeACL(roles []string) []string {
	encoded := make([]string, 0, len(roles))
	for _, role := range roles {
		if role == RoleAdmin {
			continue
		}
		encoded = append(encoded, hex.EncodeToString([]byte(role)))
	}
	return encoded
}

// DecodeACL reverses EncodeACL.
func DecodeACL(encoded []string) ([]string, error) {
	roles := make([]string, 0, len(encoded))
	for i, entry := range encoded {
		raw, err := hex.DecodeString(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidEncoding, i, entry, err)
		}
		roles = append(roles, string(raw))
	}
	return roles, nil
}
