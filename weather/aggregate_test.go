package weather

import (
	"strings"
	"testing"
)

const aggregateInput = "StationA;10.0\nStationB;-5.5\nStationA;30.0\n"

func checkAggregate(t *testing.T, name string, get func(string) (*StationStats, bool)) {
	t.Helper()

	a, ok := get("StationA")
	if !ok {
		t.Fatalf("%s: StationA missing", name)
	}
	if a.Count != 2 || a.Min != 10.0 || a.Max != 30.0 || a.Avg() != 20.0 {
		t.Errorf("%s: StationA = %+v avg=%v", name, a, a.Avg())
	}

	b, ok := get("StationB")
	if !ok {
		t.Fatalf("%s: StationB missing", name)
	}
	if b.Count != 1 || b.Min != -5.5 || b.Max != -5.5 || b.Avg() != -5.5 {
		t.Errorf("%s: StationB = %+v avg=%v", name, b, b.Avg())
	}
}

func TestAggregateRecords(t *testing.T) {
	records, err := ParseRecordsBytes(SplitLines([]byte(aggregateInput)))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	table := AggregateRecords(records)
	if table.Len() != 2 {
		t.Fatalf("table has %d stations, want 2", table.Len())
	}
	checkAggregate(t, "table", table.Get)

	m := AggregateRecordsMap(records)
	if len(m) != 2 {
		t.Fatalf("map has %d stations, want 2", len(m))
	}
	checkAggregate(t, "map", func(k string) (*StationStats, bool) {
		s, ok := m[k]
		return s, ok
	})
}

func TestAggregateReader(t *testing.T) {
	table, err := AggregateReader(NewReader(strings.NewReader(aggregateInput)))
	if err != nil {
		t.Fatalf("AggregateReader failed: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("table has %d stations, want 2", table.Len())
	}
	checkAggregate(t, "streaming", table.Get)
}

// All backends must agree exactly given the same record order.
func TestAggregateBackendsAgree(t *testing.T) {
	input := "a;1.5\nb;2.25\na;3.5\nc;-7.125\nb;0.5\na;1.0\n"
	records, err := ParseRecordsBytes(SplitLines([]byte(input)))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	table := AggregateRecords(records)
	m := AggregateRecordsMap(records)
	stream, err := AggregateReader(NewReader(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("AggregateReader failed: %v", err)
	}

	if table.Len() != len(m) || stream.Len() != len(m) {
		t.Fatalf("station counts differ: table=%d map=%d stream=%d", table.Len(), len(m), stream.Len())
	}
	for station, want := range m {
		for name, get := range map[string]func(string) (*StationStats, bool){
			"table":  table.Get,
			"stream": stream.Get,
		} {
			got, ok := get(station)
			if !ok {
				t.Fatalf("%s: %s missing", name, station)
			}
			if *got != *want {
				t.Errorf("%s: %s = %+v, want %+v", name, station, got, want)
			}
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if table := AggregateRecords(nil); !table.Empty() {
		t.Errorf("AggregateRecords(nil) not empty")
	}
	table, err := AggregateReader(NewReader(strings.NewReader("")))
	if err != nil {
		t.Fatalf("AggregateReader failed: %v", err)
	}
	if !table.Empty() {
		t.Errorf("streaming aggregate of empty input not empty")
	}
}

func TestAggregateReaderFailFast(t *testing.T) {
	table, err := AggregateReader(NewReader(strings.NewReader("a;1.0\nbroken\nb;2.0")))
	if err == nil {
		t.Fatalf("expected error, got table with %d stations", table.Len())
	}
	if table != nil {
		t.Errorf("partial aggregate returned alongside error")
	}
}
