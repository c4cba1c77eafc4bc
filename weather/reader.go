package weather

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reader streams records from a "station;temperature" text source one
// line at a time without materializing the whole input. Blank lines are
// skipped silently; errors carry the true 1-based file line number.
type Reader struct {
	br   *bufio.Reader
	c    io.Closer
	line int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// OpenFile opens path for streaming. The caller owns Close.
func OpenFile(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	r := NewReader(f)
	r.c = f
	return r, nil
}

// Close closes the underlying file, if the Reader owns one.
func (r *Reader) Close() error {
	if r.c != nil {
		return r.c.Close()
	}
	return nil
}

// Next returns the next record, or io.EOF when the input is exhausted.
// The first malformed line fails the whole stream.
func (r *Reader) Next() (Record, error) {
	for {
		line, err := r.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return Record{}, fmt.Errorf("failed to read line: %w", err)
		}
		if line == "" && err == io.EOF {
			return Record{}, io.EOF
		}
		r.line++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			continue
		}
		return r.parseLine(trimmed)
	}
}

func (r *Reader) parseLine(line string) (Record, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 2 {
		return Record{}, &FormatError{
			Line:   r.line,
			Reason: fmt.Sprintf("does not have exactly 2 columns separated by ';'. Found %d columns", len(parts)),
		}
	}

	station := strings.TrimSpace(parts[0])
	if station == "" {
		return Record{}, &FormatError{Line: r.line, Reason: "station name cannot be empty"}
	}

	tempStr := strings.TrimSpace(parts[1])
	temperature, err := strconv.ParseFloat(tempStr, 64)
	if err != nil {
		return Record{}, &ParseError{Line: r.line, Value: tempStr}
	}

	return Record{Station: station, Temperature: temperature}, nil
}

// ReadAll drains the stream into a materialized record list.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
