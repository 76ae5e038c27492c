// Package utils provides common utility functions for the search-manager application.
// It includes helpers for converting loosely typed values, such as JSON decoded
// engine responses, that don't fit into domain-specific packages.
package utils
