package dataset

import (
	"fmt"
	"testing"

	"bikeshare/domain/entities/trip"
	"bikeshare/testutil"

	"github.com/stretchr/testify/assert"
)

func newDataset(size int) *Dataset {
	ds := &Dataset{}
	for i := 0; i < size; i++ {
		startTime := fmt.Sprintf("2017-0%v-%02d 08:00:00", i%6+1, i%28+1)
		ds.Trips = append(ds.Trips, testutil.NewTrip(i, startTime, 60, "A", "B", "Subscriber"))
	}
	return ds
}

func TestFilter_AllReturnsEveryTrip(t *testing.T) {
	ds := newDataset(12)
	ds.HasGender = true

	filtered := ds.Filter(nil, nil)
	assert.Equal(t, ds.Trips, filtered.Trips)
	assert.True(t, filtered.HasGender)
	assert.False(t, filtered.HasBirthYear)
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	ds := newDataset(12)

	filtered := ds.Filter([]int{2}, nil)
	assert.Len(t, filtered.Trips, 2)
	assert.Len(t, ds.Trips, 12)
}

func TestPage(t *testing.T) {
	for _, size := range []int{0, 1, 4, 5, 6, 10, 13} {
		t.Run(fmt.Sprintf("%v trips", size), func(t *testing.T) {
			ds := newDataset(size)
			expectedPages := (size + 4) / 5

			var seen []*trip.TripData
			offset := 0
			for page := 0; page < expectedPages; page++ {
				rows := ds.Page(offset, 5)
				assert.NotEmpty(t, rows)
				assert.LessOrEqual(t, len(rows), 5)
				seen = append(seen, rows...)
				offset += 5
			}

			assert.Empty(t, ds.Page(offset, 5))
			assert.Empty(t, ds.Page(offset+100, 5))
			assert.Equal(t, ds.Trips, seen)
		})
	}
}

func TestPage_InvalidArguments(t *testing.T) {
	ds := newDataset(3)
	assert.Empty(t, ds.Page(-1, 5))
	assert.Empty(t, ds.Page(0, 0))
}
