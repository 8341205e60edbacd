package timereporter

import (
	"io"
	"time"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/reporters/report"

	log "github.com/sirupsen/logrus"
)

const (
	reporterType = "time-reporter"
	title        = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most common month, day of week and start hour. Ties go to the smallest value
type TimeStats struct {
	Month     frequencycounter.Entry[int]
	DayOfWeek frequencycounter.Entry[string]
	Hour      frequencycounter.Entry[int]
}

type TimeReporter struct {
	config *config.ExplorerConfig
}

func NewTimeReporter(explorerConfig *config.ExplorerConfig) *TimeReporter {
	return &TimeReporter{
		config: explorerConfig,
	}
}

func (tr *TimeReporter) GetType() string {
	return reporterType
}

// ComputeTimeStats returns false if there are no trips
func ComputeTimeStats(trips []*trip.TripData) (TimeStats, bool) {
	months := frequencycounter.NewFrequencyCounter[int]()
	days := frequencycounter.NewFrequencyCounter[string]()
	hours := frequencycounter.NewFrequencyCounter[int]()
	for _, tripData := range trips {
		months.Add(tripData.Month)
		days.Add(tripData.DayOfWeek)
		hours.Add(tripData.GetStartHour())
	}

	var stats TimeStats
	var ok bool
	if stats.Month, ok = months.Mode(); !ok {
		return TimeStats{}, false
	}
	stats.DayOfWeek, _ = days.Mode()
	stats.Hour, _ = hours.Mode()
	return stats, true
}

// Report prints the most frequent times of travel
func (tr *TimeReporter) Report(writer io.Writer, ds *dataset.Dataset) error {
	section := report.Begin(writer, title, tr.config.SeparatorWidth)

	stats, ok := ComputeTimeStats(ds.Trips)
	if !ok {
		log.Debugf("[reporter: %s][method: Report][status: OK] no trips to report", reporterType)
		section.Println(report.NoTripsMessage)
	} else {
		section.Printf("The most common month for users to rent a bike is %s", time.Month(stats.Month.Value))
		section.Printf("The most common day of the week to rent a bike is %s", stats.DayOfWeek.Value)
		section.Printf("The most common starting hour to rent a bike is %v", stats.Hour.Value)
	}

	section.End()
	return nil
}
