package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/radargen/radargen/pkg/radar/models"
)

// SheetsProvider is the narrow transport contract the sheet adapter depends
// on. Implementations resolve provider-level failures to the error taxonomy.
type SheetsProvider interface {
	// Metadata returns the spreadsheet title and the names of all its tabs,
	// in document order.
	Metadata(ctx context.Context, sheetID string) (title string, tabs []string, err error)
	// Values returns every cell of the named tab as text, row-major.
	Values(ctx context.Context, sheetID, sheetName string) ([][]string, error)
}

// googleProvider talks to the Google Sheets API. The service handle is built
// lazily on first use and reused afterwards.
type googleProvider struct {
	apiKey  string
	ts      oauth2.TokenSource
	account string

	mu  sync.Mutex
	svc *sheets.Service
}

// NewPublicProvider creates a provider for publicly shared documents,
// authorized by API key. An empty key sends unauthenticated requests, which
// the API answers with an access denial.
func NewPublicProvider(apiKey string) SheetsProvider {
	return &googleProvider{apiKey: apiKey}
}

// NewAuthorizedProvider creates a provider that reads through ts. account is
// the identity behind the token source, reported on denials.
func NewAuthorizedProvider(ts oauth2.TokenSource, account string) SheetsProvider {
	return &googleProvider{ts: ts, account: account}
}

func (p *googleProvider) service(ctx context.Context) (*sheets.Service, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.svc != nil {
		return p.svc, nil
	}

	var opts []option.ClientOption
	switch {
	case p.ts != nil:
		opts = append(opts, option.WithTokenSource(p.ts))
	case p.apiKey != "":
		opts = append(opts, option.WithAPIKey(p.apiKey))
	default:
		opts = append(opts, option.WithoutAuthentication())
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, models.NewTransportError(err)
	}
	p.svc = svc
	return svc, nil
}

// Metadata implements SheetsProvider.
func (p *googleProvider) Metadata(ctx context.Context, sheetID string) (string, []string, error) {
	svc, err := p.service(ctx)
	if err != nil {
		return "", nil, err
	}

	doc, err := svc.Spreadsheets.Get(sheetID).
		Fields("properties.title", "sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return "", nil, p.mapError(sheetID, err)
	}

	var title string
	if doc.Properties != nil {
		title = doc.Properties.Title
	}
	tabs := make([]string, 0, len(doc.Sheets))
	for _, s := range doc.Sheets {
		if s.Properties != nil {
			tabs = append(tabs, s.Properties.Title)
		}
	}
	return title, tabs, nil
}

// Values implements SheetsProvider.
func (p *googleProvider) Values(ctx context.Context, sheetID, sheetName string) ([][]string, error) {
	svc, err := p.service(ctx)
	if err != nil {
		return nil, err
	}

	vr, err := svc.Spreadsheets.Values.Get(sheetID, quoteRange(sheetName)).
		Context(ctx).Do()
	if err != nil {
		return nil, p.mapError(sheetID, err)
	}

	rows := make([][]string, len(vr.Values))
	for i, raw := range vr.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			row[j] = cellText(v)
		}
		rows[i] = row
	}
	return rows, nil
}

// mapError folds Google API failures into the error taxonomy.
func (p *googleProvider) mapError(sheetID string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return models.NewSheetNotFoundError("spreadsheet %s not found", sheetID)
		case http.StatusUnauthorized, http.StatusForbidden:
			return &models.AuthorizationError{Status: gerr.Code, Account: p.account}
		}
	}
	return models.NewTransportError(err)
}

// quoteRange quotes a sheet tab name for use as an A1 range, covering the
// whole tab.
func quoteRange(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// CredentialsFromFile loads a service-account key file and returns a token
// source scoped to read-only spreadsheet access, together with the account
// identity it authenticates as.
func CredentialsFromFile(ctx context.Context, path string) (oauth2.TokenSource, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, "", fmt.Errorf("parsing credentials file: %w", err)
	}

	// Account identity is best effort; user credentials carry no client_email.
	var key struct {
		ClientEmail string `json:"client_email"`
	}
	_ = json.Unmarshal(data, &key)

	return creds.TokenSource, key.ClientEmail, nil
}
