package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/parser"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

const listCSV = `Unit Code,Unit Name,Day,Time,Venue,Lecturer
BCB 105,Cell Biology,Mon,8:00-10:00,LT1,Dr Otieno
SMA 201,Calculus,Tue,10:00-12:00,LT2,Dr Wanjiku
`

var params = timetable.Params{Semester: 1, Year: 2026, InstitutionID: "kabarak"}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	require.NoError(t, os.WriteFile(path, []byte(listCSV), 0644))

	im := New(parser.Default(nil), nil, false)
	res, err := im.ImportFile(path, params, reader.Options{})
	require.NoError(t, err)

	assert.Equal(t, "list", res.Format)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "kabarak", res.Entries[0].InstitutionID)
	assert.Equal(t, "TUESDAY", res.Entries[1].Day)
}

func TestImportBytesUsesCache(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	im := New(parser.Default(nil), nil, true)
	first, err := im.ImportBytes("list.csv", []byte(listCSV), params, reader.Options{})
	require.NoError(t, err)

	cached, err := filepath.Glob(filepath.Join(home, ".hallpass_cache", "*.json"))
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	// An engine with no parsers can only answer from the cache.
	again, err := New(parser.NewEngine(nil), nil, true).ImportBytes("list.csv", []byte(listCSV), params, reader.Options{})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestImportErrors(t *testing.T) {
	im := New(parser.Default(nil), nil, false)

	_, err := im.ImportBytes("list.csv", []byte(",,\n,,\n"), params, reader.Options{})
	assert.ErrorIs(t, err, parser.ErrEmptyGrid)

	_, err = im.ImportBytes("memo.csv", []byte("Dear students\nSee you soon\n"), params, reader.Options{})
	assert.ErrorIs(t, err, parser.ErrUnrecognized)

	_, err = im.ImportBytes("old.xls", []byte("whatever"), params, reader.Options{})
	assert.ErrorIs(t, err, reader.ErrUnsupportedFormat)

	_, err = im.ImportFile(filepath.Join(t.TempDir(), "missing.csv"), params, reader.Options{})
	assert.Error(t, err)
}
