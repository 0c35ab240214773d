package source

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/radargen/radargen/pkg/radar/models"
)

// writeWorkbookFixture creates a two-tab workbook and returns its path.
func writeWorkbookFixture(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []string{"name", "ring", "quadrant", "isNew", "description"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Sheet1", cell, h)
	}
	row := []string{"Terraform", "Adopt", "tools", "FALSE", "Infrastructure as code."}
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue("Sheet1", cell, v)
	}

	if _, err := f.NewSheet("Archive"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "radar.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestWorkbookFetch(t *testing.T) {
	path := writeWorkbookFixture(t)

	res, err := NewWorkbook(Descriptor{Kind: KindWorkbook, URL: path}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if res.Title != "radar" {
		t.Errorf("Title = %q, expected %q", res.Title, "radar")
	}
	if res.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, expected the first tab", res.SheetName)
	}
	if len(res.AlternativeSheetNames) != 2 {
		t.Errorf("Expected 2 tabs, got %v", res.AlternativeSheetNames)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0]["name"] != "Terraform" || res.Rows[0]["quadrant"] != "tools" {
		t.Errorf("Row 0 = %v, expected Terraform keyed by column name", res.Rows[0])
	}
}

func TestWorkbookFetchMissingTab(t *testing.T) {
	path := writeWorkbookFixture(t)

	desc := Descriptor{Kind: KindWorkbook, URL: path, SheetName: "2019"}
	_, err := NewWorkbook(desc).Fetch(context.Background())
	var notFound *models.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Fetch(missing tab) = %T, expected *SheetNotFoundError", err)
	}
}

func TestWorkbookFetchMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.xlsx")
	_, err := NewWorkbook(Descriptor{Kind: KindWorkbook, URL: path}).Fetch(context.Background())
	var notFound *models.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Fetch(missing file) = %T, expected *SheetNotFoundError", err)
	}
}
