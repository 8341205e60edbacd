package durationreporter

import (
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/reporters/report"
)

const (
	reporterType = "duration-reporter"
	title        = "Calculating Trip Duration..."
)

type DurationReporter struct {
	config *config.ExplorerConfig
}

func NewDurationReporter(explorerConfig *config.ExplorerConfig) *DurationReporter {
	return &DurationReporter{
		config: explorerConfig,
	}
}

func (dr *DurationReporter) GetType() string {
	return reporterType
}

func ComputeDurationStats(trips []*trip.TripData) *durationaccumulator.DurationAccumulator {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range trips {
		accumulator.UpdateAccumulator(tripData.Duration)
	}
	return accumulator
}

// Report prints the total and the mean trip duration
func (dr *DurationReporter) Report(writer io.Writer, ds *dataset.Dataset) error {
	section := report.Begin(writer, title, dr.config.SeparatorWidth)

	accumulator := ComputeDurationStats(ds.Trips)
	section.Printf("The total amount of time traveled is %.2f seconds, or %.2f hours.", accumulator.TotalDuration, accumulator.GetTotalHours())

	average, ok := accumulator.GetAverageDuration()
	if ok {
		minutes, _ := accumulator.GetAverageMinutes()
		section.Printf("The mean amount of time traveled is %.2f seconds, or %.2f minutes.", average, minutes)
	} else {
		section.Println("The mean amount of time traveled is not available. " + report.NoTripsMessage)
	}

	section.End()
	return nil
}
