// Package redact produces masked copies of tables. Redaction replaces every
// cell of the selected columns with MaskToken and never touches the input.
package redact
