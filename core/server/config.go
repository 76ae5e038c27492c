package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// RolesHeader is the header in which the auth proxy passes the caller's roles.
	RolesHeader string `mapstructure:"roles_header" default:"x-tobira-user-roles"`
	// PublicPaths lists comma separated paths served without API key, including the paths below them.
	PublicPaths string `mapstructure:"public_paths" default:"/health,/metrics"`
}

// PublicPathList returns PublicPaths split into trimmed, non-empty paths.
func (c Config) PublicPathList() []string {
	var paths []string
	for _, p := range strings.Split(c.PublicPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
