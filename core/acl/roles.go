package acl

import "strings"

const (
	// RoleAdmin grants access to everything. It is never stored in encoded ACLs.
	RoleAdmin = "ROLE_ADMIN"
	// RoleAnonymous is held by every caller, logged in or not.
	RoleAnonymous = "ROLE_ANONYMOUS"
	// RoleUser is held by every logged-in caller.
	RoleUser = "ROLE_USER"
)

// IsAdmin reports whether roles contain RoleAdmin.
func IsAdmin(roles []string) bool {
	for _, role := range roles {
		if role == RoleAdmin {
			return true
		}
	}
	return false
}

// EffectiveRoles returns roles plus RoleAnonymous, without duplicates and in
// first-seen order.
func EffectiveRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles)+1)
	out := make([]string, 0, len(roles)+1)
	for _, role := range append([]string{RoleAnonymous}, roles...) {
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out
}

// RolesFromHeader parses the comma separated role list sent by the auth proxy.
// Blank entries are dropped.
func RolesFromHeader(value string) []string {
	roles := []string{}
	for _, part := range strings.Split(value, ",") {
		if role := strings.TrimSpace(part); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
