package trip

import (
	"time"

	"bikeshare/domain/entities/station"
)

// TripData struct that contains the trip data
// + Index: position of the trip in the source file
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends, kept as it appears in the source
// + Duration: duration of the trip in seconds
// + StartStation, EndStation: names of the stations where the trip begins and ends
// + UserType: Subscriber, Customer, etc.
// + Gender: empty if the source has no gender data
// + BirthYear: only meaningful if HasBirthYear is true
// + Month, DayOfWeek, StationPair: derived from the fields above by NewTripData
type TripData struct {
	Index        int
	StartTime    time.Time
	EndTime      string
	Duration     float64
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool
	Month        int
	DayOfWeek    string
	StationPair  station.Pair
}

// NewTripData builds a TripData and computes its derived fields
func NewTripData(index int, startTime time.Time, endTime string, duration float64, startStation string, endStation string, userType string) *TripData {
	return &TripData{
		Index:        index,
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        int(startTime.Month()),
		DayOfWeek:    startTime.Weekday().String(),
		StationPair:  station.NewPair(startStation, endStation),
	}
}

func (td *TripData) SetBirthYear(birthYear int) {
	td.BirthYear = birthYear
	td.HasBirthYear = true
}

// GetStartHour returns the hour of the day, 0-23, in which the trip began
func (td *TripData) GetStartHour() int {
	return td.StartTime.Hour()
}
