package stationreporter

import (
	"bytes"
	"testing"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStationStats(t *testing.T) {
	trips := []*trip.TripData{
		testutil.NewTrip(0, "2017-03-06 17:10:00", 60, "Canal St", "Wells St", "Subscriber"),
		testutil.NewTrip(1, "2017-03-07 17:20:00", 60, "Clark St", "Canal St", "Subscriber"),
		testutil.NewTrip(2, "2017-02-06 08:00:00", 60, "Clark St", "Wells St", "Subscriber"),
		testutil.NewTrip(3, "2017-02-06 09:00:00", 60, "Canal St", "Wells St", "Subscriber"),
	}

	stats, ok := ComputeStationStats(trips)
	require.True(t, ok)
	// Canal St and Clark St tie, Canal St appears first
	assert.Equal(t, frequencycounter.Entry[string]{Value: "Canal St", Count: 2}, stats.StartStation)
	assert.Equal(t, frequencycounter.Entry[string]{Value: "Wells St", Count: 3}, stats.EndStation)
	assert.Equal(t, frequencycounter.Entry[string]{Value: "Canal St to Wells St", Count: 2}, stats.StationPair)
}

func TestReport(t *testing.T) {
	cfg := testutil.LoadConfig(t)
	ds, err := dataset.NewLoader(cfg).LoadData(selection.NewSelection("chicago", nil, nil))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, NewStationReporter(cfg).Report(out, ds))

	output := out.String()
	assert.Contains(t, output, "Calculating The Most Popular Stations and Trip...")
	assert.Contains(t, output, "The most commonly used start station is: Clinton St & Washington Blvd with 3 starts.")
	assert.Contains(t, output, "The most commonly used end station is: Canal St & Taylor St with 3 stops.")
	assert.Contains(t, output, "The most frequent combination of start station and end station trip is: Clinton St & Washington Blvd to Canal St & Taylor St with 3 trips.")
}

func TestReport_EmptyDataset(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewStationReporter(testutil.LoadConfig(t)).Report(out, &dataset.Dataset{}))

	assert.Contains(t, out.String(), "No trips match the selected filters.")
	assert.NotContains(t, out.String(), "most commonly used")
}
