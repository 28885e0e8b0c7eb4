// Package dataset writes and reads windowed samples as delimited text, one
// window per row with its target in the last column.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/sartorproj/gocurve/curve"
)

var ErrShape = errors.New("row width does not match timesteps")

// Options controls the text layout.
type Options struct {
	Delimiter string // default ","
	Compress  bool   // snappy framed stream
}

// DefaultOptions returns uncompressed comma separated output.
func DefaultOptions() Options {
	return Options{Delimiter: ","}
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return ","
	}

	return o.Delimiter
}

// Write writes every window of s to w. When targets are present each row
// ends with the target value.
func Write(w io.Writer, s curve.Samples, opts Options) error {
	var sink io.Writer = w

	var sw *snappy.Writer
	if opts.Compress {
		sw = snappy.NewBufferedWriter(w)
		sink = sw
	}

	bw := bufio.NewWriter(sink)
	delim := opts.delimiter()

	for i, row := range s.X {
		for j, v := range row {
			if j > 0 {
				bw.WriteString(delim)
			}
			bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}

		if s.Y != nil && i < len(s.Y) {
			for _, v := range s.Y[i] {
				bw.WriteString(delim)
				bw.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}

	if sw != nil {
		return sw.Close()
	}

	return nil
}

// Read parses rows written by Write. Every row must hold timesteps values,
// plus one target when hasY is set.
func Read(r io.Reader, timesteps int, hasY bool, opts Options) (curve.Samples, error) {
	if opts.Compress {
		r = snappy.NewReader(r)
	}

	width := timesteps
	if hasY {
		width++
	}

	s := curve.Samples{X: [][]float64{}}
	if hasY {
		s.Y = [][]float64{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	delim := opts.delimiter()
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, delim)
		if len(fields) != width {
			return curve.Samples{}, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(fields), width, ErrShape)
		}

		row := make([]float64, width)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return curve.Samples{}, fmt.Errorf("line %d: %w", line, err)
			}

			row[i] = v
		}

		s.X = append(s.X, row[:timesteps:timesteps])
		if hasY {
			s.Y = append(s.Y, row[timesteps:])
		}
	}

	if err := scanner.Err(); err != nil {
		return curve.Samples{}, err
	}

	return s, nil
}
