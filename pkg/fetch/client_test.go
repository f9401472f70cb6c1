package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
)

func registrar(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/files/week.csv", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Unit,Day\nBCB 105,Mon\n"))
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte("a,b\n"))
	})
	mux.HandleFunc("/blob", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("??"))
	})
	mux.HandleFunc("/timetables/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
<a href="../files/week.csv">Semester 2 <b>week</b></a>
<a href="https://other.example/exams.xlsx">Exams</a>
<a href="/files/week.csv">duplicate</a>
<a href="/notes.pdf">Notes</a>
<a href="mailto:registrar@example.ac.ke">Mail</a>
</body></html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://registrar.example.ac.ke/week.xlsx"))
	assert.True(t, IsURL("http://localhost:8080/a.csv"))
	assert.False(t, IsURL("week.xlsx"))
	assert.False(t, IsURL("/home/me/week.xlsx"))
	assert.False(t, IsURL("ftp://host/a.csv"))
}

func TestDownload(t *testing.T) {
	srv := registrar(t)
	c := NewClient()

	name, data, err := c.Download(context.Background(), srv.URL+"/files/week.csv")
	require.NoError(t, err)
	assert.Equal(t, "week.csv", name)
	assert.Equal(t, "Unit,Day\nBCB 105,Mon\n", string(data))

	name, _, err = c.Download(context.Background(), srv.URL+"/download")
	require.NoError(t, err)
	assert.Equal(t, "download.csv", name, "content type supplies the extension")

	_, _, err = c.Download(context.Background(), srv.URL+"/blob")
	assert.ErrorIs(t, err, reader.ErrUnsupportedFormat)

	_, _, err = c.Download(context.Background(), srv.URL+"/missing.csv")
	assert.ErrorContains(t, err, "unexpected status code 404")
}

func TestLinks(t *testing.T) {
	srv := registrar(t)

	links, err := NewClient().Links(context.Background(), srv.URL+"/timetables/index.html")
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, Link{Text: "Semester 2 week", URL: srv.URL + "/files/week.csv"}, links[0])
	assert.Equal(t, Link{Text: "Exams", URL: "https://other.example/exams.xlsx"}, links[1])
}
