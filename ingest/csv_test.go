package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/gocurve/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := "leu\t1\t2\t3.5\n" +
		"aiv\t10\t20\t30\n" +
		"\n" +
		"7\t-1\t0\t1\n"

	set, err := LoadCSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, []string{"leu", "aiv", "7"}, set.IDs())
	assert.Equal(t, []float64{1, 2, 3.5}, set[0].Values())
	assert.Equal(t, 30.0, set[1].Max())
	assert.Equal(t, -1.0, set[2].Min())
}

func TestLoadCSVFromReaderDelimiter(t *testing.T) {
	data := `a,1,2,3
"b", 4, 5, 6`

	set, err := LoadCSVFromReader(strings.NewReader(data), &CSVOptions{Delimiter: ',', BitSize: 64})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, set.IDs())
	assert.Equal(t, []float64{4, 5, 6}, set[1].Values())
}

func TestLoadCSVFromReaderPrecision(t *testing.T) {
	data := "a\t0.1\n"

	set32, err := LoadCSVFromReader(strings.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, float64(float32(0.1)), set32[0].Values()[0])

	set64, err := LoadCSVFromReader(strings.NewReader(data), &CSVOptions{Delimiter: '\t', BitSize: 64})
	require.NoError(t, err)
	assert.Equal(t, 0.1, set64[0].Values()[0])
}

func TestLoadCSVFromReaderSkipRows(t *testing.T) {
	data := "id\tv1\tv2\na\t1\t2\n"

	set, err := LoadCSVFromReader(strings.NewReader(data), &CSVOptions{Delimiter: '\t', SkipRows: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, set.IDs())
}

func TestLoadCSVFromReaderErrors(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("a\t1\tx\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1 column 3")

	_, err = LoadCSVFromReader(strings.NewReader("\n\n"), nil)
	assert.ErrorIs(t, err, ErrNoCurves)

	_, err = LoadCSVFromReader(strings.NewReader("a\t1\t2\nb\n"), nil)
	require.ErrorIs(t, err, ErrNoValues)
	assert.Contains(t, err.Error(), "line 2: b")
}

func TestLoadCSVFile(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	_, err := LoadCSV(empty, nil)
	assert.ErrorIs(t, err, ErrEmptyFile)

	txt := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(txt, []byte("a\t1\n"), 0600))
	_, err = LoadCSV(txt, nil)
	assert.ErrorIs(t, err, ErrNotCSV)

	_, err = LoadCSV(filepath.Join(dir, "missing.csv"), nil)
	assert.Error(t, err)

	upper := filepath.Join(dir, "DATA.CSV")
	require.NoError(t, os.WriteFile(upper, []byte("a\t1\t2\n"), 0600))
	set, err := LoadCSV(upper, nil)
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

func TestSaveCSVRoundTrip(t *testing.T) {
	set := curve.Set{
		curve.New("leu", []float64{1, 2.5, -3}),
		curve.New(12, []float64{0.25, 0.5}),
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveCSV(set, path, "\t"))

	loaded, err := LoadCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i := range set {
		assert.Equal(t, set[i].ID(), loaded[i].ID())
		assert.Equal(t, set[i].Values(), loaded[i].Values())
	}
}
