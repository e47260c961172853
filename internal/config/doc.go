// Package config loads colredact configuration from an explicit file or from
// local and global YAML files. CLI flags take precedence over the local file,
// which takes precedence over the global one.
package config
