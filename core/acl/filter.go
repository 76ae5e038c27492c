package acl

import (
	"strconv"
	"strings"
)

// ReadFilter returns the filter expression restricting results to documents
// whose ACL in field shares a role with the caller. Admins get an empty filter.
func ReadFilter(field string, roles []string) string {
	if IsAdmin(roles) {
		return ""
	}

	encoded := EncodeACL(EffectiveRoles(roles))
	quoted := make([]string, len(encoded))
	for i, e := range encoded {
		quoted[i] = strconv.Quote(e)
	}
	return field + " IN [" + strings.Join(quoted, ", ") + "]"
}
