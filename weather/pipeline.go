package weather

import (
	"fmt"
	"io"

	"github.com/weirdgiraffe/wxstats/hashtable"
)

// SourceKind selects how the file bytes are acquired.
type SourceKind int

const (
	SourceBuffered SourceKind = iota
	SourceMapped
)

func (k SourceKind) String() string {
	switch k {
	case SourceBuffered:
		return "buffered"
	case SourceMapped:
		return "mmap"
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

// SplitKind selects how newline positions are found.
type SplitKind int

const (
	SplitIndexByte SplitKind = iota
	SplitScalar
)

func (k SplitKind) String() string {
	switch k {
	case SplitIndexByte:
		return "indexbyte"
	case SplitScalar:
		return "scalar"
	}
	return fmt.Sprintf("SplitKind(%d)", int(k))
}

// ParseKind selects the record parser. ParseTrusted skips UTF-8
// validation and requires input already known to be valid UTF-8.
type ParseKind int

const (
	ParseBytes ParseKind = iota
	ParseStrings
	ParseTrusted
)

func (k ParseKind) String() string {
	switch k {
	case ParseBytes:
		return "bytes"
	case ParseStrings:
		return "strings"
	case ParseTrusted:
		return "trusted"
	}
	return fmt.Sprintf("ParseKind(%d)", int(k))
}

// Options selects one implementation per pipeline stage. The zero value
// is the default pipeline: buffered read, IndexByte split, validating
// byte parser.
type Options struct {
	Source SourceKind
	Split  SplitKind
	Parse  ParseKind
}

func (o Options) String() string {
	return fmt.Sprintf("%v/%v/%v", o.Source, o.Split, o.Parse)
}

// Combinations enumerates the full strategy product, for benchmarking
// every stage combination against the same input.
func Combinations() []Options {
	var combos []Options
	for _, src := range []SourceKind{SourceBuffered, SourceMapped} {
		for _, split := range []SplitKind{SplitIndexByte, SplitScalar} {
			for _, parse := range []ParseKind{ParseBytes, ParseStrings, ParseTrusted} {
				combos = append(combos, Options{Source: src, Split: split, Parse: parse})
			}
		}
	}
	return combos
}

// Process runs the full pipeline over path with the selected strategies:
// acquire bytes, split lines, parse records, aggregate. The first
// malformed line aborts the run with no partial result.
func Process(path string, opts Options) (*hashtable.Table[string, *StationStats], error) {
	var data []byte
	switch opts.Source {
	case SourceMapped:
		m, err := OpenMapped(path)
		if err != nil {
			return nil, err
		}
		defer m.Close()
		data = m.Bytes()
	default:
		var err error
		data, err = ReadFileBuffered(path)
		if err != nil {
			return nil, err
		}
	}

	var lines [][]byte
	switch opts.Split {
	case SplitScalar:
		lines = SplitLinesScalar(data)
	default:
		lines = SplitLines(data)
	}

	var records []Record
	var err error
	switch opts.Parse {
	case ParseStrings:
		records, err = ParseRecordsString(lines)
	case ParseTrusted:
		records, err = ParseRecordsTrusted(lines)
	default:
		records, err = ParseRecordsBytes(lines)
	}
	if err != nil {
		return nil, err
	}

	return AggregateRecords(records), nil
}

// ProcessStreaming folds path record by record without materializing the
// file, lines, or record list.
func ProcessStreaming(path string) (*hashtable.Table[string, *StationStats], error) {
	r, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return AggregateReader(r)
}

// WriteReport writes the aggregate as CSV: a header row, then one row
// per station in table iteration order, temperatures with one fractional
// digit.
func WriteReport(w io.Writer, stats *hashtable.Table[string, *StationStats]) error {
	if _, err := fmt.Fprintln(w, "Station,Records,MinTemperature,MaxTemperature,AvgTemperature"); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	var werr error
	stats.Range(func(station string, s *StationStats) bool {
		_, werr = fmt.Fprintf(w, "%s,%d,%.1f,%.1f,%.1f\n", station, s.Count, s.Min, s.Max, s.Avg())
		return werr == nil
	})
	if werr != nil {
		return fmt.Errorf("failed to write report row: %w", werr)
	}
	return nil
}
