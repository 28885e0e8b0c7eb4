package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sartorproj/gocurve/curve"
)

var (
	ErrEmptyFile = errors.New("file is empty")
	ErrNotCSV    = errors.New("file does not have the .csv extension")
	ErrNoCurves  = errors.New("no curves found")
	ErrNoValues  = errors.New("curve has no values")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune // Field delimiter (default: '\t')
	BitSize   int  // Float precision of parsed values, 32 or 64 (default: 32)
	SkipRows  int  // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: '\t',
		BitSize:   32,
	}
}

// LoadCSV loads a curve set from a file where every row holds a curve id
// followed by its values. Empty files and files without a .csv extension are
// rejected.
func LoadCSV(filename string, opts *CSVOptions) (curve.Set, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, fmt.Errorf("%s: %w", filename, ErrNotCSV)
	}

	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}

	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyFile)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a curve set from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (curve.Set, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	bitSize := opts.BitSize
	if bitSize != 64 {
		bitSize = 32
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = '\t'
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		_, err := reader.Read()
		if err != nil {
			return nil, err
		}
	}

	var set curve.Set

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)

		id := strings.TrimSpace(strings.Trim(record[0], "\""))
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: %s: %w", line, id, ErrNoValues)
		}

		values := make([]float64, 0, len(record)-1)

		for col, field := range record[1:] {
			field = strings.TrimSpace(strings.Trim(field, "\""))

			v, err := strconv.ParseFloat(field, bitSize)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, col+2, err)
			}

			values = append(values, v)
		}

		set = append(set, curve.New(id, values))
	}

	if len(set) == 0 {
		return nil, ErrNoCurves
	}

	return set, nil
}

// SaveCSV writes one row per curve, the id followed by its values.
func SaveCSV(set curve.Set, filename string, delimiter string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, set, delimiter); err != nil {
		return err
	}

	return file.Close()
}

// WriteCSV writes the set to w in the layout read by LoadCSVFromReader.
func WriteCSV(w io.Writer, set curve.Set, delimiter string) error {
	if delimiter == "" {
		delimiter = "\t"
	}

	writer := bufio.NewWriter(w)

	for _, c := range set {
		if _, err := writer.WriteString(c.CSV(delimiter)); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	return writer.Flush()
}
