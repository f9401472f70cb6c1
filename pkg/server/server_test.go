package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/ingest"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

const gridCSV = `TIME,MONDAY,TUESDAY,WEDNESDAY
7:00-10:00,BCB 105 - LT1 / DR OTIENO,,"BIT 113/BCS 110 - ICT1 / LECTURER"
`

func newTestServer() *Server {
	im := ingest.New(parser.Default(nil), nil, false)
	return New(im, nil, timetable.Params{Semester: 1, Year: 2025, InstitutionID: "default"}, reader.Options{})
}

func upload(t *testing.T, filename, content string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/timetables/parse", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type response struct {
	Format  string            `json:"format"`
	Entries []timetable.Entry `json:"entries"`
	Units   []timetable.Unit  `json:"units"`
	Error   string            `json:"error"`
}

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, response) {
	t.Helper()
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	var out response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestParseUpload(t *testing.T) {
	rec, out := serve(t, upload(t, "week.csv", gridCSV, map[string]string{
		"semester":       "2",
		"year":           "2026",
		"institution_id": "kabarak",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "grid", out.Format)
	require.Len(t, out.Entries, 3)
	assert.Len(t, out.Units, 3)

	for _, e := range out.Entries {
		assert.Equal(t, 2, e.Semester)
		assert.Equal(t, 2026, e.Year)
		assert.Equal(t, "kabarak", e.InstitutionID)
	}
}

func TestParseUploadDefaults(t *testing.T) {
	rec, out := serve(t, upload(t, "week.csv", gridCSV, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "default", out.Entries[0].InstitutionID)
	assert.Equal(t, 2025, out.Entries[0].Year)
}

func TestParseUploadErrors(t *testing.T) {
	tests := []struct {
		name   string
		req    func(t *testing.T) *http.Request
		status int
	}{
		{"missing file", func(t *testing.T) *http.Request { return upload(t, "", "", nil) }, http.StatusBadRequest},
		{"bad semester", func(t *testing.T) *http.Request {
			return upload(t, "week.csv", gridCSV, map[string]string{"semester": "two"})
		}, http.StatusBadRequest},
		{"legacy xls", func(t *testing.T) *http.Request { return upload(t, "week.xls", "data", nil) }, http.StatusUnsupportedMediaType},
		{"empty grid", func(t *testing.T) *http.Request { return upload(t, "week.csv", ",,\n", nil) }, http.StatusUnprocessableEntity},
		{"prose", func(t *testing.T) *http.Request {
			return upload(t, "memo.csv", "Dear students\nTimetable coming soon\n", nil)
		}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := serve(t, tt.req(t))
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, out.Error)
		})
	}
}

func TestParseUploadNotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/timetables/parse", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec, out := serve(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, out.Error, "multipart")
}
