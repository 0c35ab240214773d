package source

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/radargen/radargen/pkg/radar/models"
)

// JSONFile reads a radar document stored as a JSON array of keyed rows.
type JSONFile struct {
	desc   Descriptor
	client *http.Client
}

// NewJSONFile creates the adapter. A nil client falls back to
// http.DefaultClient.
func NewJSONFile(desc Descriptor, client *http.Client) *JSONFile {
	if client == nil {
		client = http.DefaultClient
	}
	return &JSONFile{desc: desc, client: client}
}

// Descriptor reports the origin identity.
func (j *JSONFile) Descriptor() Descriptor {
	return j.desc
}

// Fetch reads and decodes the document. Rows arrive already keyed; the
// column list is the sorted key set of the first row, since JSON objects
// carry no order of their own. Non-string cell values are rendered as text.
func (j *JSONFile) Fetch(ctx context.Context) (*Result, error) {
	rc, err := openDocument(ctx, j.client, j.desc.URL)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var docs []map[string]interface{}
	if err := json.NewDecoder(rc).Decode(&docs); err != nil {
		return nil, models.NewMalformedDataError("parsing JSON: %v", err)
	}

	var columns []string
	var rows []models.Row
	if len(docs) > 0 {
		for k := range docs[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)

		rows = make([]models.Row, 0, len(docs))
		for _, doc := range docs {
			row := make(models.Row, len(doc))
			for k, v := range doc {
				row[k] = cellText(v)
			}
			rows = append(rows, row)
		}
	}

	title := FileTitle(j.desc.URL, ".json")
	return &Result{
		Title:                 title,
		SheetName:             title,
		AlternativeSheetNames: []string{},
		Columns:               columns,
		Rows:                  rows,
	}, nil
}
