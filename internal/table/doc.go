// Package table holds the in-memory tabular model shared by the classifier,
// the redactor and the file loaders. Loaders guarantee unique column names
// and a rectangular shape; New enforces both.
package table
