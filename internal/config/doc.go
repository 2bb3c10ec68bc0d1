// Package config loads and validates server and database settings from
// defaults, an optional config file, and TASKBOARD_-prefixed environment
// variables.
package config
