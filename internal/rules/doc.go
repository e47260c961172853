// Package rules defines the ordered column-name rules used to flag
// privacy-sensitive columns. Each rule maps a group of lowercase substring
// patterns to a category label citing the Australian Privacy Principles and
// the Victorian Information Privacy Principles. The built-in set is returned
// by Default; custom YAML files can replace, extend or disable rules by ID.
package rules
