package reader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// span tracks a rowspan cell still covering rows below it.
type span struct {
	left  int
	value string
}

// readHTML reads the first <table> in the document. Line breaks inside a
// cell are kept as newlines so stacked classes stay separable.
func readHTML(r io.Reader, opts Options) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no <table> element found")
	}
	table.Find("br").ReplaceWithHtml("\n")

	var rows [][]string
	pending := make(map[int]*span)

	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var row []string
		col := 0

		// Fill columns still covered by a rowspan from above.
		fillSpans := func() {
			for {
				s, ok := pending[col]
				if !ok {
					return
				}
				v := ""
				if opts.FillMerged {
					v = s.value
				}
				row = append(row, v)
				if s.left--; s.left == 0 {
					delete(pending, col)
				}
				col++
			}
		}

		tr.Find("th, td").Each(func(j int, td *goquery.Selection) {
			fillSpans()
			text := cellText(td)
			colspan := spanAttr(td, "colspan")
			rowspan := spanAttr(td, "rowspan")
			for k := 0; k < colspan; k++ {
				v := text
				if k > 0 && !opts.FillMerged {
					v = ""
				}
				row = append(row, v)
				if rowspan > 1 {
					pending[col] = &span{left: rowspan - 1, value: text}
				}
				col++
			}
		})
		fillSpans()
		rows = append(rows, row)
	})

	return rows, nil
}

func cellText(td *goquery.Selection) string {
	lines := strings.Split(td.Text(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

func spanAttr(td *goquery.Selection, name string) int {
	v, ok := td.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
