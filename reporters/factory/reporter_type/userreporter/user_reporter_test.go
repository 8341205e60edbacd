package userreporter

import (
	"bytes"
	"testing"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/selection"
	"bikeshare/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, city string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewLoader(testutil.LoadConfig(t)).LoadData(selection.NewSelection(city, nil, nil))
	require.NoError(t, err)
	return ds
}

func sumCounts(entries []frequencycounter.Entry[string]) int {
	total := 0
	for _, entry := range entries {
		total += entry.Count
	}
	return total
}

func TestComputeUserStats_Chicago(t *testing.T) {
	ds := load(t, "chicago")
	stats := ComputeUserStats(ds)

	assert.Equal(t, []frequencycounter.Entry[string]{
		{Value: "Subscriber", Count: 7},
		{Value: "Customer", Count: 1},
	}, stats.UserTypes)

	require.True(t, stats.Genders.Present)
	assert.Equal(t, []frequencycounter.Entry[string]{
		{Value: "Male", Count: 5},
		{Value: "Female", Count: 2},
		{Value: "Unknown", Count: 1},
	}, stats.Genders.Counts)

	assert.Equal(t, ds.Len(), sumCounts(stats.UserTypes))
	assert.Equal(t, ds.Len(), sumCounts(stats.Genders.Counts))

	assert.Equal(t, BirthYearStats{
		Present:    true,
		Recorded:   true,
		Earliest:   1975,
		MostRecent: 1992,
		MostCommon: 1990,
	}, stats.BirthYears)
}

func TestComputeUserStats_BlankUserTypeCountsAsUnknown(t *testing.T) {
	ds := load(t, "new york city")
	stats := ComputeUserStats(ds)

	assert.Equal(t, []frequencycounter.Entry[string]{
		{Value: "Subscriber", Count: 2},
		{Value: "Unknown", Count: 1},
	}, stats.UserTypes)
	assert.Equal(t, ds.Len(), sumCounts(stats.Genders.Counts))
	assert.Equal(t, 1981, stats.BirthYears.MostCommon)
}

func TestReport_Chicago(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, NewUserReporter(testutil.LoadConfig(t)).Report(out, load(t, "chicago")))

	output := out.String()
	assert.Contains(t, output, "Calculating User Stats...")
	assert.Contains(t, output, "These are the user types and number of each:\nSubscriber    7\nCustomer      1\n")
	assert.Contains(t, output, "These are the number of users of each gender:\nMale       5\nFemale     2\nUnknown    1\n")
	assert.Contains(t, output, "The earliest birth year of a user was 1975.")
	assert.Contains(t, output, "The most recent birth year of a user was 1992.")
	assert.Contains(t, output, "The most common birth year of users was 1990.")
	assert.NotContains(t, output, "does not exist")
}

func TestReport_WashingtonHasNoDemographics(t *testing.T) {
	ds := load(t, "washington")
	stats := ComputeUserStats(ds)
	assert.False(t, stats.Genders.Present)
	assert.False(t, stats.BirthYears.Present)

	out := &bytes.Buffer{}
	require.NoError(t, NewUserReporter(testutil.LoadConfig(t)).Report(out, ds))

	output := out.String()
	assert.Contains(t, output, "Subscriber    3\nCustomer      1\n")
	assert.Contains(t, output, "Gender data does not exist for this location.")
	assert.Contains(t, output, "Birth year data does not exist for this location.")
}

func TestReport_EmptyDataset(t *testing.T) {
	ds := &dataset.Dataset{HasGender: true, HasBirthYear: true}

	out := &bytes.Buffer{}
	require.NoError(t, NewUserReporter(testutil.LoadConfig(t)).Report(out, ds))

	output := out.String()
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("No trips match the selected filters.")))
	assert.Contains(t, output, "No birth year values recorded for the selected trips.")
}
