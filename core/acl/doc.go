// Package acl defines the access-control roles of the portal and the encoding
// used to store role lists in the search index.
//
// # Roles
//
// RoleAdmin is the distinguished administrator role. Holders of it bypass ACL
// filtering entirely at query time, so it is never stored in an encoded ACL.
// Every caller implicitly holds RoleAnonymous.
//
// # Encoding
//
// The search engine filters case-insensitively, which would merge role
// identifiers that only differ in case. EncodeACL therefore stores each role
// as lowercase hex:
//
//	acl.EncodeACL([]string{"ROLE_ADMIN", "editor"}) // ["656469746f72"]
//
// ReadFilter builds the matching query-time filter expression for a caller's
// roles, returning an empty filter for administrators.
package acl
