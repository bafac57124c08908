// Package report serializes batch records to a BOM-prefixed CSV file and an
// XLSX workbook sharing one timestamped base name.
package report
