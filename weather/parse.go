package weather

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// ParseRecordsString converts line spans into records, validating every
// line as UTF-8 and splitting on ';' as strings. Line numbers in errors
// are 1-based indexes into lines.
func ParseRecordsString(lines [][]byte) ([]Record, error) {
	records := make([]Record, 0, len(lines))

	for i, lineBytes := range lines {
		if len(lineBytes) == 0 {
			continue
		}
		if !utf8.Valid(lineBytes) {
			return nil, &FormatError{Line: i + 1, Reason: "invalid UTF-8 encoding"}
		}

		line := strings.TrimSpace(string(lineBytes))
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			return nil, &FormatError{
				Line:   i + 1,
				Reason: fmt.Sprintf("does not have exactly 2 columns separated by ';'. Found %d columns", len(parts)),
			}
		}

		station := strings.TrimSpace(parts[0])
		if station == "" {
			return nil, &FormatError{Line: i + 1, Reason: "station name cannot be empty"}
		}

		tempStr := strings.TrimSpace(parts[1])
		temperature, err := strconv.ParseFloat(tempStr, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Value: tempStr}
		}

		records = append(records, Record{Station: station, Temperature: temperature})
	}
	return records, nil
}

// ParseRecordsBytes converts line spans into records by locating the ';'
// delimiter directly in the raw bytes and validating each field as UTF-8
// independently.
func ParseRecordsBytes(lines [][]byte) ([]Record, error) {
	records := make([]Record, 0, len(lines))

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}

		sep := bytes.IndexByte(line, ';')
		if sep < 0 {
			return nil, &FormatError{Line: i + 1, Reason: "no semicolon delimiter found"}
		}
		if sep == 0 {
			return nil, &FormatError{Line: i + 1, Reason: "station name cannot be empty"}
		}

		stationBytes := line[:sep]
		if !utf8.Valid(stationBytes) {
			return nil, &FormatError{Line: i + 1, Reason: "invalid UTF-8 in station name"}
		}
		station := string(bytes.TrimSpace(stationBytes))

		tempBytes := line[sep+1:]
		if !utf8.Valid(tempBytes) {
			return nil, &FormatError{Line: i + 1, Reason: "invalid UTF-8 in temperature"}
		}
		tempStr := string(bytes.TrimSpace(tempBytes))
		temperature, err := strconv.ParseFloat(tempStr, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Value: tempStr}
		}

		records = append(records, Record{Station: station, Temperature: temperature})
	}
	return records, nil
}

// ParseRecordsTrusted is ParseRecordsBytes without the UTF-8 validation
// and without the intermediate field copies. The caller must guarantee
// the input is valid UTF-8; feeding it anything else produces garbage
// station strings instead of an error. Only the station name and error
// values are copied out of the shared buffer.
func ParseRecordsTrusted(lines [][]byte) ([]Record, error) {
	records := make([]Record, 0, len(lines))

	for i, line := range lines {
		if len(line) == 0 {
			continue
		}

		sep := bytes.IndexByte(line, ';')
		if sep < 0 {
			return nil, &FormatError{Line: i + 1, Reason: "no semicolon delimiter found"}
		}
		if sep == 0 {
			return nil, &FormatError{Line: i + 1, Reason: "station name cannot be empty"}
		}

		station := strings.TrimSpace(byteView(line[:sep]))
		tempStr := strings.TrimSpace(byteView(line[sep+1:]))
		temperature, err := strconv.ParseFloat(tempStr, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Value: strings.Clone(tempStr)}
		}

		records = append(records, Record{Station: strings.Clone(station), Temperature: temperature})
	}
	return records, nil
}

// byteView reinterprets b as a string without copying. The result aliases
// b and must not outlive it.
func byteView(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
