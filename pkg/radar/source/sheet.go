package source

import (
	"context"
	"regexp"

	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/parser"
)

var sheetIDPattern = regexp.MustCompile(`spreadsheets/d/([a-zA-Z0-9_-]+)`)

// SheetIDFromURL extracts the spreadsheet id from a Google Sheets URL. A
// bare id passes through unchanged.
func SheetIDFromURL(ref string) string {
	if m := sheetIDPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}

// GoogleSheet reads a radar document through the Google Sheets API. The same
// adapter serves public documents and access-controlled ones; the difference
// lives entirely in the provider it is built with.
type GoogleSheet struct {
	desc     Descriptor
	provider SheetsProvider
}

// NewGoogleSheet creates the adapter reading desc through provider.
func NewGoogleSheet(desc Descriptor, provider SheetsProvider) *GoogleSheet {
	return &GoogleSheet{desc: desc, provider: provider}
}

// Descriptor reports the origin identity.
func (s *GoogleSheet) Descriptor() Descriptor {
	return s.desc
}

// Fetch resolves document metadata, picks the sheet tab, and reads its rows.
// The requested tab is checked against the document's tab list before any
// values are read, so a missing tab surfaces as SheetNotFoundError rather
// than a provider range error.
func (s *GoogleSheet) Fetch(ctx context.Context) (*Result, error) {
	title, tabs, err := s.provider.Metadata(ctx, s.desc.SheetID)
	if err != nil {
		return nil, err
	}
	if len(tabs) == 0 {
		return nil, models.NewSheetNotFoundError("spreadsheet %s has no sheet tabs", s.desc.SheetID)
	}

	name := s.desc.SheetName
	if name == "" {
		name = tabs[0]
	} else if !containsTab(tabs, name) {
		return nil, models.NewSheetNotFoundError("sheet tab %q not found in %q", name, title)
	}

	values, err := s.provider.Values(ctx, s.desc.SheetID, name)
	if err != nil {
		return nil, err
	}

	var columns []string
	var rows []models.Row
	if len(values) > 0 {
		columns = values[0]
		for _, vals := range values[1:] {
			if emptyValues(vals) {
				continue
			}
			rows = append(rows, parser.ZipRow(columns, vals))
		}
	}

	return &Result{
		Title:                 title,
		SheetName:             name,
		AlternativeSheetNames: tabs,
		Columns:               columns,
		Rows:                  rows,
	}, nil
}
