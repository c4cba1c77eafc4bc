// Package weather ingests delimited "station;temperature" observation
// files and folds them into per-station statistics. Every pipeline stage
// (file source, line splitting, record parsing, aggregation) exists in
// several interchangeable variants so their cost can be compared; all
// variants converge on the same aggregation contract.
package weather

// Record is one parsed observation. Immutable once constructed.
type Record struct {
	Station     string
	Temperature float64
}

// StationStats accumulates the observations folded for one station.
type StationStats struct {
	Station string
	Count   uint64
	Min     float64
	Max     float64
	Sum     float64
}

// NewStationStats seeds the statistics with the first observation.
func NewStationStats(station string, temperature float64) *StationStats {
	return &StationStats{
		Station: station,
		Count:   1,
		Min:     temperature,
		Max:     temperature,
		Sum:     temperature,
	}
}

// Add folds one more observation in place.
func (s *StationStats) Add(temperature float64) {
	s.Count++
	if temperature < s.Min {
		s.Min = temperature
	}
	if temperature > s.Max {
		s.Max = temperature
	}
	s.Sum += temperature
}

// Avg is the running-sum mean. Zero for an empty StationStats, which
// cannot occur after construction.
func (s *StationStats) Avg() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Summary describes a whole record set.
type Summary struct {
	TotalRecords   int
	UniqueStations int
	Min            float64
	Max            float64
	Avg            float64
}

// Summarize computes dataset-wide statistics. ok is false for an empty
// record list.
func Summarize(records []Record) (s Summary, ok bool) {
	if len(records) == 0 {
		return s, false
	}
	stations := make(map[string]struct{})
	s.Min = records[0].Temperature
	s.Max = records[0].Temperature
	sum := 0.0
	for _, r := range records {
		stations[r.Station] = struct{}{}
		if r.Temperature < s.Min {
			s.Min = r.Temperature
		}
		if r.Temperature > s.Max {
			s.Max = r.Temperature
		}
		sum += r.Temperature
	}
	s.TotalRecords = len(records)
	s.UniqueStations = len(stations)
	s.Avg = sum / float64(len(records))
	return s, true
}
