package stationreporter

import (
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/reporters/report"

	log "github.com/sirupsen/logrus"
)

const (
	reporterType = "station-reporter"
	title        = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most used start station, end station and start-end combination with their counts.
// Ties go to the value that appears first in the trips
type StationStats struct {
	StartStation frequencycounter.Entry[string]
	EndStation   frequencycounter.Entry[string]
	StationPair  frequencycounter.Entry[string]
}

type StationReporter struct {
	config *config.ExplorerConfig
}

func NewStationReporter(explorerConfig *config.ExplorerConfig) *StationReporter {
	return &StationReporter{
		config: explorerConfig,
	}
}

func (sr *StationReporter) GetType() string {
	return reporterType
}

// ComputeStationStats returns false if there are no trips
func ComputeStationStats(trips []*trip.TripData) (StationStats, bool) {
	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	pairs := frequencycounter.NewFrequencyCounter[string]()
	for _, tripData := range trips {
		startStations.Add(tripData.StartStation)
		endStations.Add(tripData.EndStation)
		pairs.Add(tripData.StationPair.Label())
	}

	var stats StationStats
	var ok bool
	if stats.StartStation, ok = startStations.MostFrequent(); !ok {
		return StationStats{}, false
	}
	stats.EndStation, _ = endStations.MostFrequent()
	stats.StationPair, _ = pairs.MostFrequent()
	return stats, true
}

// Report prints the most popular stations and trip
func (sr *StationReporter) Report(writer io.Writer, ds *dataset.Dataset) error {
	section := report.Begin(writer, title, sr.config.SeparatorWidth)

	stats, ok := ComputeStationStats(ds.Trips)
	if !ok {
		log.Debugf("[reporter: %s][method: Report][status: OK] no trips to report", reporterType)
		section.Println(report.NoTripsMessage)
	} else {
		section.Printf("The most commonly used start station is: %s with %v starts.", stats.StartStation.Value, stats.StartStation.Count)
		section.Printf("The most commonly used end station is: %s with %v stops.", stats.EndStation.Value, stats.EndStation.Count)
		section.Printf("The most frequent combination of start station and end station trip is: %s with %v trips.", stats.StationPair.Value, stats.StationPair.Count)
	}

	section.End()
	return nil
}
