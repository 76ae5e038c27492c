// Package search exposes search index management over HTTP.
//
// It owns the catalogue of the portal's indexes (event, series, realm, user)
// with their desired searchable and filterable attributes, and wires the
// reconciler and the ACL encoding to the outside.
//
// # HTTP Endpoints
//
//   - GET /health : Engine and database health.
//   - GET /search/indexes : Drift between the indexes and the catalogue (read-only).
//   - POST /search/indexes/prepare : Creates missing indexes and reconciles settings (supports ?index=name).
//   - GET /search/filter : Read filter for the roles passed by the auth proxy.
//   - GET /search/events/:id/acl : Stored ACL of an event and its encoded form.
//
// # ACL fields
//
// Documents store their ACLs hex encoded in read_roles and write_roles, without
// ROLE_ADMIN. Administrators receive no filter at all.
package search
