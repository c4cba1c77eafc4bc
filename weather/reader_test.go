package weather

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReaderValidInput(t *testing.T) {
	r := NewReader(strings.NewReader("Station1;25.5\nStation2;-10.2\nStation3;0.0"))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	want := []Record{
		{Station: "Station1", Temperature: 25.5},
		{Station: "Station2", Temperature: -10.2},
		{Station: "Station3", Temperature: 0.0},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestReaderTrimsWhitespace(t *testing.T) {
	r := NewReader(strings.NewReader("  Station1  ;  25.5  \n  Station2  ;  -10.2  "))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 || records[0].Station != "Station1" || records[0].Temperature != 25.5 {
		t.Fatalf("records = %+v", records)
	}
}

func TestReaderSkipsEmptyLines(t *testing.T) {
	r := NewReader(strings.NewReader("Station1;25.5\n\n\nStation2;-10.2\n\n"))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 2 || records[1].Station != "Station2" {
		t.Fatalf("records = %+v", records)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records from empty input", len(records))
	}
}

func TestReaderNextIteration(t *testing.T) {
	r := NewReader(strings.NewReader("Station1;25.5\nStation2;-10.2"))
	count := 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if rec.Station == "" {
			t.Errorf("empty station in %+v", rec)
		}
		count++
	}
	if count != 2 {
		t.Fatalf("iterated %d records, want 2", count)
	}
}

func TestReaderErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		message string
	}{
		{"missing delimiter", "Station1 25.5", "does not have exactly 2 columns"},
		{"too many columns", "Station1;25.5;extra", "Found 3 columns"},
		{"empty station", ";25.5", "station name cannot be empty"},
	}
	for _, tc := range cases {
		r := NewReader(strings.NewReader(tc.input))
		_, err := r.ReadAll()
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("%s: error = %v, want FormatError", tc.name, err)
		}
		if !strings.Contains(ferr.Error(), tc.message) {
			t.Errorf("%s: message %q does not contain %q", tc.name, ferr.Error(), tc.message)
		}
	}

	r := NewReader(strings.NewReader("Station1;not_a_number"))
	_, err := r.ReadAll()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("bad temperature: error = %v, want ParseError", err)
	}
	if perr.Value != "not_a_number" {
		t.Errorf("bad temperature: offending text %q", perr.Value)
	}
}

// Error line numbers count real file lines, blank ones included.
func TestReaderLineNumbers(t *testing.T) {
	r := NewReader(strings.NewReader("Station1;25.5\n\nStation2;oops"))
	_, err := r.ReadAll()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if perr.Line != 3 {
		t.Fatalf("line = %d, want 3", perr.Line)
	}
}
