package reader

import (
	"bytes"
	"encoding/csv"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// readCSV accepts ragged rows and stray quotes, which registrar exports
// produce routinely.
func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}
