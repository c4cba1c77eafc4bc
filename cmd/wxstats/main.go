// Command wxstats aggregates a "station;temperature" observation file
// into per-station statistics and prints them as CSV.
package main

import (
	"fmt"
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
	stats, err := weather.ProcessStreaming(path)
	if err != nil {
		return err
	}
	if stats.Empty() {
		fmt.Fprintln(os.Stderr, "No weather records found in the file.")
		return nil
	}
	return weather.WriteReport(os.Stdout, stats)
}
