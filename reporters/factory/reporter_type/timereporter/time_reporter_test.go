package timereporter

import (
	"bytes"
	"testing"

	"bikeshare/dataset"
	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTimeStats(t *testing.T) {
	trips := []*trip.TripData{
		testutil.NewTrip(0, "2017-03-06 17:10:00", 60, "A", "B", "Subscriber"),
		testutil.NewTrip(1, "2017-03-07 17:20:00", 60, "A", "B", "Subscriber"),
		testutil.NewTrip(2, "2017-02-06 08:00:00", 60, "A", "B", "Subscriber"),
	}

	stats, ok := ComputeTimeStats(trips)
	require.True(t, ok)
	assert.Equal(t, 3, stats.Month.Value)
	assert.Equal(t, "Monday", stats.DayOfWeek.Value)
	assert.Equal(t, 2, stats.DayOfWeek.Count)
	assert.Equal(t, 17, stats.Hour.Value)
}

func TestComputeTimeStats_TiesGoToSmallestValue(t *testing.T) {
	trips := []*trip.TripData{
		testutil.NewTrip(0, "2017-06-02 09:00:00", 60, "A", "B", "Subscriber"),
		testutil.NewTrip(1, "2017-05-03 08:00:00", 60, "A", "B", "Subscriber"),
	}

	stats, ok := ComputeTimeStats(trips)
	require.True(t, ok)
	assert.Equal(t, 5, stats.Month.Value)
	assert.Equal(t, "Friday", stats.DayOfWeek.Value)
	assert.Equal(t, 8, stats.Hour.Value)
}

func TestReport(t *testing.T) {
	cfg := testutil.LoadConfig(t)
	ds, err := dataset.NewLoader(cfg).LoadData(selection.NewSelection("chicago", nil, nil))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	reporter := NewTimeReporter(cfg)
	require.NoError(t, reporter.Report(out, ds))

	output := out.String()
	assert.Contains(t, output, "Calculating The Most Frequent Times of Travel...")
	assert.Contains(t, output, "The most common month for users to rent a bike is January\n")
	assert.Contains(t, output, "The most common day of the week to rent a bike is Friday\n")
	assert.Contains(t, output, "The most common starting hour to rent a bike is 8\n")
	assert.Contains(t, output, "This took ")
	assert.Equal(t, "time-reporter", reporter.GetType())
}

func TestReport_EmptyDataset(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewTimeReporter(testutil.LoadConfig(t)).Report(out, &dataset.Dataset{}))

	assert.Contains(t, out.String(), "No trips match the selected filters.")
	assert.NotContains(t, out.String(), "most common")
}
