package parser

import (
	"strings"

	"github.com/radargen/radargen/pkg/radar/models"
)

// Record is the sanitized form of exactly one source row, ready for
// assembly. All string fields are whitespace-trimmed.
type Record struct {
	Name        string
	Ring        string
	Quadrant    string
	IsNew       bool
	Topic       string
	Description string
}

// Sanitize normalizes a keyed row into a Record. The novelty flag is true
// iff the raw cell equals "true" ignoring case and surrounding whitespace;
// every other value, including absence, means false. Missing optional cells
// become empty strings. Rows are assumed to have passed content validation.
func Sanitize(row models.Row) Record {
	return Record{
		Name:        strings.TrimSpace(row[ColumnName]),
		Ring:        strings.TrimSpace(row[ColumnRing]),
		Quadrant:    strings.TrimSpace(row[ColumnQuadrant]),
		IsNew:       strings.EqualFold(strings.TrimSpace(row[ColumnIsNew]), "true"),
		Topic:       strings.TrimSpace(row[ColumnTopic]),
		Description: strings.TrimSpace(row[ColumnDescription]),
	}
}

// ZipRow pairs an ordered header with a positional value slice into a keyed
// row. Rows shorter than the header get empty cells for the missing tail;
// values beyond the header are dropped.
func ZipRow(header []string, values []string) models.Row {
	row := make(models.Row, len(header))
	for i, col := range header {
		if i < len(values) {
			row[col] = values[i]
		} else {
			row[col] = ""
		}
	}
	return row
}

// SanitizeValues normalizes a header-plus-values row through the same path
// as the keyed shape, so both source shapes yield identical records.
func SanitizeValues(header []string, values []string) Record {
	return Sanitize(ZipRow(header, values))
}
