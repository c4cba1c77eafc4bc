// Command stationinfo streams a "station;temperature" observation file
// and prints dataset-level facts: station count, longest station name and
// total record count.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/weirdgiraffe/wxstats/weather"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <weather-file.csv>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s weather_data.csv\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	r, err := weather.OpenFile(path)
	if err != nil {
		return err
	}
	defer r.Close()

	stations := make(map[string]struct{})
	longest := ""
	total := 0

	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		total++
		stations[rec.Station] = struct{}{}
		if len(rec.Station) > len(longest) {
			longest = rec.Station
		}
	}

	if total == 0 {
		fmt.Fprintln(os.Stderr, "No weather records found in the file.")
		return nil
	}

	fmt.Printf("TotalStations: %d\n", len(stations))
	fmt.Printf("LongestStationNameLength: %d\n", len(longest))
	fmt.Printf("LongestStationName: %s\n", longest)
	fmt.Printf("TotalRecords: %d\n", total)
	return nil
}
