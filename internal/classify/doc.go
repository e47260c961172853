// Package classify flags columns by name. Classify maps a single column name
// to the first matching rule; Scan applies it to every column of a table and
// returns the flagged columns in table order. Cell contents are never read.
package classify
