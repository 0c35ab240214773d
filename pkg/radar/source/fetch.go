package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/radargen/radargen/pkg/radar/models"
)

// openDocument opens ref as an HTTP(S) URL or a local file path and returns
// its content stream.
func openDocument(ctx context.Context, client *http.Client, ref string) (io.ReadCloser, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return openHTTP(ctx, client, ref)
	}
	f, err := os.Open(ref)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.NewSheetNotFoundError("no such file: %s", ref)
		}
		return nil, models.NewTransportError(err)
	}
	return f, nil
}

// openHTTP fetches rawURL and maps non-success statuses onto the error
// taxonomy.
func openHTTP(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, models.NewTransportError(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, models.NewTransportError(err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, models.NewSheetNotFoundError("document not found at %s", rawURL)
	case http.StatusUnauthorized, http.StatusForbidden:
		resp.Body.Close()
		return nil, &models.AuthorizationError{Status: resp.StatusCode}
	default:
		resp.Body.Close()
		return nil, models.NewTransportError(fmt.Errorf("unexpected status %s fetching %s", resp.Status, rawURL))
	}
}

// FileTitle derives a display title from a document reference: everything
// after the last slash, percent- and plus-decoded, with ext stripped when
// present. The extension match is case-sensitive.
func FileTitle(ref, ext string) string {
	seg := ref
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	if decoded, err := url.QueryUnescape(seg); err == nil {
		seg = decoded
	}
	return strings.TrimSuffix(seg, ext)
}

// emptyValues reports whether every cell of a row is blank after trimming.
func emptyValues(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// containsTab reports whether name is one of the document's sheet tabs.
func containsTab(tabs []string, name string) bool {
	for _, t := range tabs {
		if t == name {
			return true
		}
	}
	return false
}

// cellText renders a loosely typed cell value as its text form. Numbers
// print without a forced exponent or trailing zeros.
func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
