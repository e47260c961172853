// Package report renders scan results, rule listings and redaction summaries
// as bordered tables, plain text or JSON.
package report
