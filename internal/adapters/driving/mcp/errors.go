// Package mcp provides an MCP (Model Context Protocol) server adapter for profdir.
// It lets AI assistants search and read the profile directory.
package mcp

import "errors"

// ErrMissingDirectory is returned when the directory service is not provided.
var ErrMissingDirectory = errors.New("mcp: directory service is required")
