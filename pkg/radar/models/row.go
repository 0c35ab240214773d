package models

// Row is a single raw source row in keyed shape: column name to raw cell
// value. Column order is carried separately by the fetch result, since Go
// maps do not preserve it. Rows are ephemeral; they exist only between fetch
// and sanitization and are never part of the finished radar.
type Row map[string]string
