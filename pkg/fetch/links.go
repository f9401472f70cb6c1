package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
)

// Link is a timetable file linked from a registrar page.
type Link struct {
	Text string
	URL  string
}

// Links retrieves all timetable files (xlsx, csv, html) linked from pageURL.
// Relative links are resolved against the page address.
func (c *Client) Links(ctx context.Context, pageURL string) ([]Link, error) {
	resp, err := c.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	return linksIn(doc, resp.Request.URL), nil
}

func linksIn(doc *goquery.Document, base *url.URL) []Link {
	var links []Link
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref)
		if _, err := reader.FormatOf(abs.Path); err != nil {
			return
		}
		if seen[abs.String()] {
			return
		}
		seen[abs.String()] = true

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			text = fileName(abs)
		}
		links = append(links, Link{Text: text, URL: abs.String()})
	})

	return links
}
