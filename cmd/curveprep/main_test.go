package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sartorproj/gocurve/dataset"
	"github.com/sartorproj/gocurve/ingest"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCurves(t *testing.T, dir string, n, length int) string {
	t.Helper()

	var sb strings.Builder

	for i := 0; i < n; i++ {
		sb.WriteString("c")
		sb.WriteString(string(rune('a' + i)))

		for j := 0; j < length; j++ {
			sb.WriteString("\t")
			sb.WriteString(strings.Repeat("1", 1+(i+j)%3))
		}

		sb.WriteString("\n")
	}

	path := filepath.Join(dir, "curves.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0600))

	return path
}

func runCmd(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var out bytes.Buffer
	code := run(context.Background(), args, &out, l.NewNopLoggerWrapper())

	return code, out.String()
}

func TestRunUsage(t *testing.T) {
	code, out := runCmd(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "usage: curveprep")

	code, _ = runCmd(t, "help")
	assert.Equal(t, 0, code)

	code, out = runCmd(t, "train")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown command")
}

func TestWindows(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 3, 20)
	output := filepath.Join(dir, "train.csv")

	code, out := runCmd(t, "windows", "-d", data, "-o", output)
	require.Equal(t, 0, code, out)

	// default train windows: 10 steps over the first 16 values of each curve
	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	s, err := dataset.Read(f, 10, true, dataset.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 18, s.Len())

	for _, row := range s.X {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestWindowsEvalCompressed(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 2, 60)
	output := filepath.Join(dir, "eval.csv.sz")

	code, out := runCmd(t, "windows", "-d", data, "-mode", "eval", "-o", output, "-z")
	require.Equal(t, 0, code, out)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	// eval windows: 10 steps over the last 12 values
	s, err := dataset.Read(f, 10, true, dataset.Options{Compress: true})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
}

func TestWindowsArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 2, 20)

	code, out := runCmd(t, "windows", "-d", data)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "argument -o was not provided")

	code, out = runCmd(t, "windows", "-d", filepath.Join(dir, "missing.csv"), "-o", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "existing file")

	code, out = runCmd(t, "windows", "-o", filepath.Join(dir, "x.csv"))
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "-d or -db")

	code, out = runCmd(t, "windows", "-d", data, "-o", filepath.Join(dir, "x.csv"), "-mode", "predict")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown window mode")
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 10, 5)
	trainPath := filepath.Join(dir, "a.csv")
	testPath := filepath.Join(dir, "b.csv")

	code, out := runCmd(t, "split", "-d", data, "-train", trainPath, "-test", testPath)
	require.Equal(t, 0, code, out)

	first, err := ingest.LoadCSV(trainPath, nil)
	require.NoError(t, err)
	second, err := ingest.LoadCSV(testPath, nil)
	require.NoError(t, err)

	assert.Len(t, first, 8)
	assert.Len(t, second, 2)

	// same seed, same split
	code, _ = runCmd(t, "split", "-d", data, "-train", trainPath+"2.csv", "-test", testPath+"2.csv")
	require.Equal(t, 0, code)

	again, err := ingest.LoadCSV(trainPath+"2.csv", nil)
	require.NoError(t, err)
	assert.Equal(t, first.IDs(), again.IDs())
}

func TestSplitConfig(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 9, 5)
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("split:\n  value: 0\n  as_percentage: false\n  shuffle: false\n"), 0600))

	trainPath := filepath.Join(dir, "a.csv")
	testPath := filepath.Join(dir, "b.csv")

	code, out := runCmd(t, "split", "-d", data, "-config", cfgPath, "-train", trainPath, "-test", testPath)
	require.Equal(t, 0, code, out)

	first, err := ingest.LoadCSV(trainPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "cb", "cc"}, first.IDs())

	code, out = runCmd(t, "split", "-d", data, "-value", "-1", "-train", trainPath, "-test", testPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "greater than or equal to 0")
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 4, 30)

	code, out := runCmd(t, "describe", "-d", data)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "TIMESTEPS")
	for _, id := range []string{"ca", "cb", "cc", "cd"} {
		assert.Contains(t, out, id)
	}

	code, out = runCmd(t, "describe", "-d", data, "-n", "2", "-seed", "5")
	require.Equal(t, 0, code, out)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)

	code, out = runCmd(t, "describe", "-d", data, "-n", "-2")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "-n")
}

func TestImportThenWindowsFromStore(t *testing.T) {
	dir := t.TempDir()
	data := writeCurves(t, dir, 3, 20)
	db := filepath.Join(dir, "curves.db")

	code, out := runCmd(t, "import", "-d", data, "-db", db)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Imported 3 curves")

	output := filepath.Join(dir, "train.csv")
	code, out = runCmd(t, "windows", "-db", db, "-o", output)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Wrote 18 windows")

	code, out = runCmd(t, "import", "-d", data)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "argument -db was not provided")
}

func TestIntArgRanges(t *testing.T) {
	tests := []struct {
		name    string
		floor   *int
		ceiling *int
		value   string
		wantErr string
	}{
		{"inside", ptr(1), ptr(359), "10", ""},
		{"below", ptr(1), ptr(359), "0", "range [1,359]"},
		{"above", ptr(1), ptr(359), "360", "range [1,359]"},
		{"floor only", ptr(1), nil, "0", "greater than or equal to 1"},
		{"ceiling only", nil, ptr(5), "6", "less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("t", flag.ContinueOnError)
			var n int
			fs.IntVar(&n, "n", 0, "")

			err := parseArgs(fs, []string{"-n", tt.value}, intArg{name: "n", floor: tt.floor, ceiling: tt.ceiling, value: &n})
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMandatoryArgs(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var (
		x float64
		b bool
	)
	fs.Float64Var(&x, "x", 0, "")
	fs.BoolVar(&b, "b", false, "")

	err := parseArgs(fs, []string{"-b"}, floatArg{name: "x", mandatory: true, value: &x}, boolArg{name: "b", value: &b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-x was not provided")

	fs = flag.NewFlagSet("t", flag.ContinueOnError)
	fs.Float64Var(&x, "x", 0, "")
	err = parseArgs(fs, []string{"-x", "2", "extra"}, floatArg{name: "x", ceiling: ptr(3.0), value: &x})
	assert.Error(t, err)
}
