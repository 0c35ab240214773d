package source

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/parser"
)

// CSVFile reads a radar document from a delimited text file, fetched over
// HTTP or from disk.
type CSVFile struct {
	desc   Descriptor
	client *http.Client
}

// NewCSVFile creates the adapter. A nil client falls back to
// http.DefaultClient.
func NewCSVFile(desc Descriptor, client *http.Client) *CSVFile {
	if client == nil {
		client = http.DefaultClient
	}
	return &CSVFile{desc: desc, client: client}
}

// Descriptor reports the origin identity.
func (c *CSVFile) Descriptor() Descriptor {
	return c.desc
}

// Fetch reads and parses the document. Header cells keep their exact text
// except for a UTF-8 BOM stripped from the first one. Ragged data rows are
// tolerated; the zip step pads or drops cells against the header.
func (c *CSVFile) Fetch(ctx context.Context) (*Result, error) {
	rc, err := openDocument(ctx, c.client, c.desc.URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, models.NewMalformedDataError("parsing CSV: %v", err)
	}

	var columns []string
	var rows []models.Row
	if len(records) > 0 {
		columns = records[0]
		if len(columns) > 0 {
			columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
		}
		for _, values := range records[1:] {
			if emptyValues(values) {
				continue
			}
			rows = append(rows, parser.ZipRow(columns, values))
		}
	}

	title := FileTitle(c.desc.URL, ".csv")
	return &Result{
		Title:                 title,
		SheetName:             title,
		AlternativeSheetNames: []string{},
		Columns:               columns,
		Rows:                  rows,
	}, nil
}
