// Package colredact provides the command-line interface for the colredact
// tool. It configures subcommands (scan, redact, rules, classify, config),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/colredact/cmd/colredact"
//	func main() { colredact.Execute() }
package colredact
