// Package config provides configuration management for the search manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, roles header, public paths)
//   - Search: Meilisearch host, key, index prefix and task timeouts
//   - Database: MySQL connection details of the portal database
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, e.g. SEARCH_INDEX_PREFIX sets search.index_prefix.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Search.Host)
package config
