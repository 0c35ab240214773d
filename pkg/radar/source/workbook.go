package source

import (
	"context"
	"errors"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/parser"
)

// Workbook reads a radar document from a local Excel workbook.
type Workbook struct {
	desc Descriptor
}

// NewWorkbook creates the adapter for a local .xlsx path.
func NewWorkbook(desc Descriptor) *Workbook {
	return &Workbook{desc: desc}
}

// Descriptor reports the origin identity.
func (w *Workbook) Descriptor() Descriptor {
	return w.desc
}

// Fetch opens the workbook, picks the sheet tab and reads its rows through
// the same header-plus-values path as the sheet adapter.
func (w *Workbook) Fetch(ctx context.Context) (*Result, error) {
	f, err := excelize.OpenFile(w.desc.URL)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.NewSheetNotFoundError("no such workbook: %s", w.desc.URL)
		}
		return nil, models.NewMalformedDataError("opening workbook: %v", err)
	}
	defer f.Close()

	tabs := f.GetSheetList()
	if len(tabs) == 0 {
		return nil, models.NewSheetNotFoundError("workbook %s has no sheets", w.desc.URL)
	}

	name := w.desc.SheetName
	if name == "" {
		name = tabs[0]
	} else if !containsTab(tabs, name) {
		return nil, models.NewSheetNotFoundError("sheet tab %q not found in workbook", name)
	}

	values, err := f.GetRows(name)
	if err != nil {
		return nil, models.NewMalformedDataError("reading sheet %q: %v", name, err)
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

	title := FileTitle(w.desc.URL, ".xlsx")
	return &Result{
		Title:                 title,
		SheetName:             name,
		AlternativeSheetNames: tabs,
		Columns:               columns,
		Rows:                  rows,
	}, nil
}
