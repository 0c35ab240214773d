package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/api/googleapi"

	"github.com/radargen/radargen/pkg/radar/models"
)

func TestGoogleProviderMapErrorNotFound(t *testing.T) {
	p := &googleProvider{}
	err := p.mapError("abc123", &googleapi.Error{Code: 404})
	var notFound *models.SheetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("mapError(404) returned %T, expected *SheetNotFoundError", err)
	}
	if notFound.Message != "spreadsheet abc123 not found" {
		t.Errorf("Message = %q, expected %q", notFound.Message, "spreadsheet abc123 not found")
	}
}

func TestGoogleProviderMapErrorDenied(t *testing.T) {
	p := &googleProvider{account: "svc@example.com"}
	for _, code := range []int{401, 403} {
		err := p.mapError("abc123", &googleapi.Error{Code: code})
		var denied *models.AuthorizationError
		if !errors.As(err, &denied) {
			t.Fatalf("mapError(%d) returned %T, expected *AuthorizationError", code, err)
		}
		if denied.Status != code {
			t.Errorf("mapError(%d) Status = %d, expected %d", code, denied.Status, code)
		}
		if denied.Account != "svc@example.com" {
			t.Errorf("mapError(%d) Account = %q, expected %q", code, denied.Account, "svc@example.com")
		}
	}
}

func TestGoogleProviderMapErrorWrapped(t *testing.T) {
	// The API client wraps its errors; unwrapping must still find them.
	p := &googleProvider{account: "svc@example.com"}
	err := p.mapError("abc123", fmt.Errorf("reading values: %w", &googleapi.Error{Code: 403}))
	var denied *models.AuthorizationError
	if !errors.As(err, &denied) {
		t.Fatalf("mapError(wrapped 403) returned %T, expected *AuthorizationError", err)
	}
	if denied.Status != 403 {
		t.Errorf("Status = %d, expected 403", denied.Status)
	}
	if denied.Account != "svc@example.com" {
		t.Errorf("Account = %q, expected %q", denied.Account, "svc@example.com")
	}
}

func TestGoogleProviderMapErrorTransport(t *testing.T) {
	p := &googleProvider{}
	tests := []struct {
		name string
		err  error
	}{
		{"server error", &googleapi.Error{Code: 500}},
		{"rate limited", &googleapi.Error{Code: 429}},
		{"plain error", errors.New("connection reset")},
	}
	for _, tt := range tests {
		err := p.mapError("abc123", tt.err)
		var transport *models.TransportError
		if !errors.As(err, &transport) {
			t.Errorf("%s: mapError returned %T, expected *TransportError", tt.name, err)
			continue
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: mapped error does not unwrap to the original", tt.name)
		}
	}
}

func TestQuoteRange(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"2025", "'2025'"},
		{"Q1 '25", "'Q1 ''25'"},
	}
	for _, tt := range tests {
		if got := quoteRange(tt.name); got != tt.want {
			t.Errorf("quoteRange(%q) = %q, expected %q", tt.name, got, tt.want)
		}
	}
}

func TestCredentialsFromFileMissing(t *testing.T) {
	_, _, err := CredentialsFromFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatalf("CredentialsFromFile(absent) = nil error, expected a read failure")
	}
}

func TestCredentialsFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("Failed to write credentials fixture: %v", err)
	}
	if _, _, err := CredentialsFromFile(context.Background(), path); err == nil {
		t.Fatalf("CredentialsFromFile(malformed) = nil error, expected a parse failure")
	}
}
