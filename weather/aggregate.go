package weather

import (
	"io"

	"github.com/weirdgiraffe/wxstats/hashtable"
)

// AggregateRecords folds a materialized record list into per-station
// statistics backed by the custom hash table. Statistics are updated in
// place through the stored pointer.
func AggregateRecords(records []Record) *hashtable.Table[string, *StationStats] {
	stats := hashtable.New[string, *StationStats]()
	for _, r := range records {
		if s, ok := stats.Get(r.Station); ok {
			s.Add(r.Temperature)
		} else {
			stats.Set(r.Station, NewStationStats(r.Station, r.Temperature))
		}
	}
	return stats
}

// AggregateRecordsMap is AggregateRecords on the built-in map, the
// fastest general-purpose backing store available. Results are
// numerically identical for the same record order.
func AggregateRecordsMap(records []Record) map[string]*StationStats {
	stats := make(map[string]*StationStats)
	for _, r := range records {
		if s, ok := stats[r.Station]; ok {
			s.Add(r.Temperature)
		} else {
			stats[r.Station] = NewStationStats(r.Station, r.Temperature)
		}
	}
	return stats
}

// AggregateReader folds records one at a time as the Reader produces
// them. The first malformed line aborts the run with no partial result.
func AggregateReader(r *Reader) (*hashtable.Table[string, *StationStats], error) {
	stats := hashtable.New[string, *StationStats]()
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, err
		}
		if s, ok := stats.Get(rec.Station); ok {
			s.Add(rec.Temperature)
		} else {
			stats.Set(rec.Station, NewStationStats(rec.Station, rec.Temperature))
		}
	}
}
