package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/radargen/radargen/pkg/radar/models"
)

const csvFixture = "name,ring,quadrant,isNew,description\n" +
	"Terraform,Adopt,tools,FALSE,Infrastructure as code.\n" +
	",,,,\n" +
	"Pulumi,Trial,tools,TRUE,Programmable infra.\n"

func TestCSVFileFetchLocal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "team radar.csv")
	if err := os.WriteFile(path, []byte(csvFixture), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	res, err := NewCSVFile(Descriptor{Kind: KindCSV, URL: path}, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if res.Title != "team radar" {
		t.Errorf("Title = %q, expected %q", res.Title, "team radar")
	}
	if res.SheetName != res.Title {
		t.Errorf("SheetName = %q, expected it to equal the title", res.SheetName)
	}
	if res.AlternativeSheetNames == nil || len(res.AlternativeSheetNames) != 0 {
		t.Errorf("AlternativeSheetNames = %v, expected empty non-nil slice", res.AlternativeSheetNames)
	}
	if len(res.Columns) != 5 || res.Columns[0] != "name" {
		t.Errorf("Columns = %v, expected the five header names", res.Columns)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("Expected 2 rows after dropping the blank one, got %d", len(res.Rows))
	}
	if res.Rows[1]["name"] != "Pulumi" || res.Rows[1]["isNew"] != "TRUE" {
		t.Errorf("Row 1 = %v, expected Pulumi keyed by column name", res.Rows[1])
	}
}

func TestCSVFileFetchHTTP(t *testing.T) {
	// BOM on the first header cell and a ragged row.
	body := "\ufeffname,ring,quadrant,isNew,description\n" +
		"Vault,Adopt,tools,FALSE\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res, err := NewCSVFile(Descriptor{Kind: KindCSV, URL: srv.URL + "/radar.csv"}, srv.Client()).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.Columns[0] != "name" {
		t.Errorf("Columns[0] = %q, expected BOM to be stripped", res.Columns[0])
	}
	if res.Rows[0]["description"] != "" {
		t.Errorf("Short row description = %q, expected empty pad", res.Rows[0]["description"])
	}
	if res.Title != "radar" {
		t.Errorf("Title = %q, expected %q", res.Title, "radar")
	}
}

func TestCSVFileFetchStatuses(t *testing.T) {
	tests := []struct {
		status   int
		expected interface{} // pointer to the expected error type
	}{
		{http.StatusNotFound, &models.SheetNotFoundError{}},
		{http.StatusForbidden, &models.AuthorizationError{}},
		{http.StatusUnauthorized, &models.AuthorizationError{}},
		{http.StatusTeapot, &models.TransportError{}},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		_, err := NewCSVFile(Descriptor{Kind: KindCSV, URL: srv.URL + "/radar.csv"}, srv.Client()).Fetch(context.Background())
		srv.Close()
		if err == nil {
			t.Errorf("Fetch(status %d) = nil error, expected %T", tt.status, tt.expected)
			continue
		}
		matched := false
		switch tt.expected.(type) {
		case *models.SheetNotFoundError:
			var e *models.SheetNotFoundError
			matched = errors.As(err, &e)
		case *models.AuthorizationError:
			var e *models.AuthorizationError
			matched = errors.As(err, &e)
			if matched && e.Status != tt.status {
				t.Errorf("Fetch(status %d) carried status %d", tt.status, e.Status)
			}
		case *models.TransportError:
			var e *models.TransportError
			matched = errors.As(err, &e)
		}
		if !matched {
			t.Errorf("Fetch(status %d) = %T, expected %T", tt.status, err, tt.expected)
		}
	}
}

func TestCSVFileFetchMissingLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")
	_, err := NewCSVFile(Descriptor{Kind: KindCSV, URL: path}, nil).Fetch(context.Background())
	var notFound *models.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Fetch(missing file) = %T, expected *SheetNotFoundError", err)
	}
}

func TestCSVFileFetchUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	if err := os.WriteFile(path, []byte("name,ring\n\"unterminated,Adopt\n"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	_, err := NewCSVFile(Descriptor{Kind: KindCSV, URL: path}, nil).Fetch(context.Background())
	var malformed *models.MalformedDataError
	if !errors.As(err, &malformed) {
		t.Errorf("Fetch(broken csv) = %T, expected *MalformedDataError", err)
	}
}
