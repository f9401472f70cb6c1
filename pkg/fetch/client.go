// Package fetch downloads timetable files published on registrar websites.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
)

const (
	userAgent = "hallpass/1.0 (timetable import)"

	// maxDownload bounds a single timetable file.
	maxDownload = 32 << 20
)

// Client handles HTTP requests to registrar websites
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsURL reports whether s looks like an http(s) address rather than a path.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Get fetches the given URL and returns the HTTP response
func (c *Client) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, rawURL)
	}

	return resp, nil
}

// Download fetches a timetable file. The returned name carries an
// extension the reader understands, taken from the URL path or, failing
// that, the response's Content-Type.
func (c *Client) Download(ctx context.Context, rawURL string) (string, []byte, error) {
	resp, err := c.Get(ctx, rawURL)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownload+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	if len(data) > maxDownload {
		return "", nil, fmt.Errorf("%s is larger than %d MB", rawURL, maxDownload>>20)
	}

	name := fileName(resp.Request.URL)
	if _, err := reader.FormatOf(name); err != nil {
		ext, ok := extensionFor(resp.Header.Get("Content-Type"))
		if !ok {
			return "", nil, err
		}
		name = strings.TrimSuffix(name, path.Ext(name)) + ext
	}
	return name, data, nil
}

func fileName(u *url.URL) string {
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return "download"
	}
	return base
}

var contentTypes = map[string]string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"text/csv":                 ".csv",
	"application/csv":          ".csv",
	"text/html":                ".html",
	"application/vnd.ms-excel": ".xls",
}

func extensionFor(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	ext, ok := contentTypes[mediaType]
	return ext, ok
}
