// Package database manages the connection to the portal database.
//
// The search manager only reads from it: stored event ACLs are loaded to show
// how they are encoded for the search index. The connection is optional, and
// features depending on it report themselves as unavailable without it.
//
// # Components
//
//   - Connect: opens a pooled GORM connection to MySQL and verifies it with a ping.
//   - GetTableColumns / MissingColumns: schema inspection used to verify that
//     the tables the service reads have the expected columns.
package database
