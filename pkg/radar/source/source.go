// Package source fetches raw radar rows from their origin: Google Sheets
// documents, CSV and JSON files reachable over HTTP or on disk, and local
// Excel workbooks.
package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/radargen/radargen/pkg/radar/models"
)

// Kind tags the source variant a Descriptor selects.
type Kind string

const (
	// KindPublicSheet reads a publicly shared Google Sheets document.
	KindPublicSheet Kind = "public-sheet"
	// KindProtectedSheet reads an access-controlled Google Sheets document.
	KindProtectedSheet Kind = "protected-sheet"
	// KindCSV reads a delimited text document.
	KindCSV Kind = "csv"
	// KindJSON reads a JSON array document.
	KindJSON Kind = "json"
	// KindWorkbook reads a local Excel workbook.
	KindWorkbook Kind = "workbook"
)

// Descriptor identifies a radar document and how to reach it.
type Descriptor struct {
	// Kind selects the adapter variant.
	Kind Kind `json:"kind"`
	// SheetID is the Google Sheets document id. Sheet kinds only.
	SheetID string `json:"sheet_id,omitempty"`
	// SheetName names the sheet tab to read; empty selects the first tab of
	// the document. Sheet and workbook kinds only.
	SheetName string `json:"sheet_name,omitempty"`
	// URL locates csv and json documents (HTTP or local path) and workbooks
	// (local path).
	URL string `json:"url,omitempty"`
}

// Result is the product of a fetch: everything validation, sanitization and
// assembly need.
type Result struct {
	// Title is the resolved document title.
	Title string
	// SheetName is the sheet tab the rows came from. Single-document sources
	// reuse the title.
	SheetName string
	// AlternativeSheetNames lists all tabs of the document, the current one
	// included. Never nil; single-document sources carry an empty slice.
	AlternativeSheetNames []string
	// Columns is the header row in document order.
	Columns []string
	// Rows holds the data rows in keyed shape, in document order. Rows that
	// are blank in every cell are dropped.
	Rows []models.Row
}

// Source is a fetchable origin of radar rows.
type Source interface {
	// Fetch retrieves rows, columns and sheet metadata. Failures use the
	// error taxonomy of the models package.
	Fetch(ctx context.Context) (*Result, error)
	// Descriptor reports the origin identity.
	Descriptor() Descriptor
}

// Config carries the shared dependencies adapters are built with.
type Config struct {
	// Client serves HTTP document fetches. Nil means http.DefaultClient.
	Client *http.Client
	// APIKey authorizes public Google Sheets API reads.
	APIKey string
	// TokenSource authorizes protected-sheet reads.
	TokenSource oauth2.TokenSource
	// Account is the identity behind TokenSource, reported on denials.
	Account string
	// Provider overrides the Google Sheets transport. Tests use this.
	Provider SheetsProvider
}

// New builds the adapter variant selected by desc.
func New(desc Descriptor, cfg Config) (Source, error) {
	switch desc.Kind {
	case KindPublicSheet:
		p := cfg.Provider
		if p == nil {
			p = NewPublicProvider(cfg.APIKey)
		}
		return NewGoogleSheet(desc, p), nil
	case KindProtectedSheet:
		p := cfg.Provider
		if p == nil {
			p = NewAuthorizedProvider(cfg.TokenSource, cfg.Account)
		}
		return NewGoogleSheet(desc, p), nil
	case KindCSV:
		return NewCSVFile(desc, cfg.Client), nil
	case KindJSON:
		return NewJSONFile(desc, cfg.Client), nil
	case KindWorkbook:
		return NewWorkbook(desc), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", desc.Kind)
	}
}

// Resolve classifies a raw document reference into a Descriptor. Known file
// extensions pick the csv, json and workbook variants; anything else is
// treated as a Google Sheets reference, protected when authorized is set.
func Resolve(ref, sheetName string, authorized bool) Descriptor {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasSuffix(ref, ".csv"):
		return Descriptor{Kind: KindCSV, URL: ref}
	case strings.HasSuffix(ref, ".json"):
		return Descriptor{Kind: KindJSON, URL: ref}
	case strings.HasSuffix(ref, ".xlsx"):
		return Descriptor{Kind: KindWorkbook, URL: ref, SheetName: sheetName}
	default:
		kind := KindPublicSheet
		if authorized {
			kind = KindProtectedSheet
		}
		return Descriptor{Kind: kind, SheetID: SheetIDFromURL(ref), SheetName: sheetName}
	}
}
