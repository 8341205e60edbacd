package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"

	"github.com/stretchr/testify/require"
)

// rootDir returns the directory of the repository, whatever package runs the test
func rootDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(file))
}

// LoadConfig loads the explorer config and points it to the fixture datasets:
// chicago (8 trips), new york city (3 trips) and washington (4 trips, no gender nor birth year)
func LoadConfig(t *testing.T) *config.ExplorerConfig {
	t.Helper()

	cfg, err := config.LoadConfigFromFile(filepath.Join(rootDir(), "explorer", "config", "config.yaml"))
	require.NoError(t, err)
	cfg.DatasetsPath = filepath.Join(rootDir(), "testutil", "testdata")
	return cfg
}

// NewTrip builds a trip that started at the given time. Stations, duration and user type are free
func NewTrip(index int, startTime string, duration float64, startStation string, endStation string, userType string) *trip.TripData {
	parsed, err := time.Parse("2006-01-02 15:04:05", startTime)
	if err != nil {
		panic(err)
	}
	return trip.NewTripData(index, parsed, "", duration, startStation, endStation, userType)
}
