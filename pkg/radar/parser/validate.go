// Package parser validates raw radar rows and assembles them into the
// radar aggregate.
package parser

import (
	"strings"

	"github.com/radargen/radargen/pkg/radar/models"
)

// Column names of the radar document contract.
const (
	ColumnName        = "name"
	ColumnRing        = "ring"
	ColumnQuadrant    = "quadrant"
	ColumnIsNew       = "isNew"
	ColumnTopic       = "topic"
	ColumnDescription = "description"
)

// RequiredColumns lists the columns every radar document must declare, in
// the order content checks report them. Topic is optional and not listed.
var RequiredColumns = []string{
	ColumnName,
	ColumnRing,
	ColumnQuadrant,
	ColumnIsNew,
	ColumnDescription,
}

// ValidateColumns checks that every required column appears in the source
// column set. Extra columns are allowed and ignored. A failure names each
// missing column and is a MalformedDataError.
func ValidateColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return models.NewMalformedDataError(
			"missing required column(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateContent checks that every required cell of every row is non-empty
// after trimming. A failure names the first offending column and its 1-based
// row number and is a MalformedDataError.
func ValidateContent(rows []models.Row) error {
	for i, row := range rows {
		for _, col := range RequiredColumns {
			if strings.TrimSpace(row[col]) == "" {
				return models.NewMalformedDataError(
					"empty %q cell in row %d", col, i+1)
			}
		}
	}
	return nil
}
