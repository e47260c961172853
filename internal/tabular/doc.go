// Package tabular reads and writes the file formats colredact accepts (CSV,
// TSV and XLSX) and converts them to and from table.Table. Loaders normalise
// headers so the resulting tables always have unique column names.
package tabular
