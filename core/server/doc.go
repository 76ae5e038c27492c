// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: listen port, API key, the header the auth proxy uses
// to pass caller roles, and the paths that stay public (health and metrics).
package server
