package factory

import (
	"fmt"
	"io"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/reporters/factory/reporter_type/durationreporter"
	"bikeshare/reporters/factory/reporter_type/stationreporter"
	"bikeshare/reporters/factory/reporter_type/timereporter"
	"bikeshare/reporters/factory/reporter_type/userreporter"
)

const (
	timeReporterType     = "time-reporter"
	stationReporterType  = "station-reporter"
	durationReporterType = "duration-reporter"
	userReporterType     = "user-reporter"
)

// IReporter computes one category of statistics over a Dataset and prints them
type IReporter interface {
	GetType() string
	Report(writer io.Writer, ds *dataset.Dataset) error
}

// NewReporter initialize a reporter of some type.
// Possible reporter types are: time-reporter, station-reporter, duration-reporter, user-reporter
func NewReporter(reporterType string, explorerConfig *config.ExplorerConfig) (IReporter, error) {
	switch reporterType {
	case timeReporterType:
		return timereporter.NewTimeReporter(explorerConfig), nil
	case stationReporterType:
		return stationreporter.NewStationReporter(explorerConfig), nil
	case durationReporterType:
		return durationreporter.NewDurationReporter(explorerConfig), nil
	case userReporterType:
		return userreporter.NewUserReporter(explorerConfig), nil
	}

	return nil, fmt.Errorf("[method: NewReporter][status: error] Invalid reporter type %s", reporterType)
}

// NewReporters initialize the reporters listed in the config, keeping their order
func NewReporters(explorerConfig *config.ExplorerConfig) ([]IReporter, error) {
	reporters := make([]IReporter, 0, len(explorerConfig.Reporters))
	for _, reporterType := range explorerConfig.Reporters {
		reporter, err := NewReporter(reporterType, explorerConfig)
		if err != nil {
			return nil, err
		}
		reporters = append(reporters, reporter)
	}
	return reporters, nil
}
