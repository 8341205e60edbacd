package dataset

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Dataset trips of a city after applying the filters of a session iteration
// + HasGender: the source has a gender column
// + HasBirthYear: the source has a birth year column
type Dataset struct {
	Trips        []*trip.TripData
	HasGender    bool
	HasBirthYear bool
}

func (ds *Dataset) Len() int {
	return len(ds.Trips)
}

func (ds *Dataset) IsEmpty() bool {
	return len(ds.Trips) == 0
}

// Filter returns a new Dataset with the trips that started in one of the given months
// and on one of the given days. An empty months or days slice disables that filter.
// + months: 1-based month numbers
// + days: capitalized weekday names, e.g. Monday
func (ds *Dataset) Filter(months []int, days []string) *Dataset {
	filtered := &Dataset{
		Trips:        make([]*trip.TripData, 0, len(ds.Trips)),
		HasGender:    ds.HasGender,
		HasBirthYear: ds.HasBirthYear,
	}

	for _, tripData := range ds.Trips {
		if len(months) > 0 && !utils.ContainsInt(tripData.Month, months) {
			continue
		}
		if len(days) > 0 && !utils.ContainsString(tripData.DayOfWeek, days) {
			continue
		}
		filtered.Trips = append(filtered.Trips, tripData)
	}

	return filtered
}

// Page returns at most size trips starting at offset. Offsets past the end return an empty page
func (ds *Dataset) Page(offset int, size int) []*trip.TripData {
	if offset < 0 || size <= 0 || offset >= len(ds.Trips) {
		return []*trip.TripData{}
	}
	end := min(offset+size, len(ds.Trips))
	return ds.Trips[offset:end]
}
