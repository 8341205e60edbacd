package durationaccumulator

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * 60
)

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of the durations, in seconds
type DurationAccumulator struct {
	Counter       int
	TotalDuration float64
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(newDuration float64) {
	da.Counter += 1
	da.TotalDuration += newDuration
}

// GetTotalHours returns TotalDuration expressed in hours
func (da *DurationAccumulator) GetTotalHours() float64 {
	return da.TotalDuration / secondsPerHour
}

// GetAverageDuration returns the mean duration in seconds, false if no trip was collected
func (da *DurationAccumulator) GetAverageDuration() (float64, bool) {
	if da.Counter == 0 {
		return 0, false
	}
	return da.TotalDuration / float64(da.Counter), true
}

// GetAverageMinutes returns the mean duration in minutes, false if no trip was collected
func (da *DurationAccumulator) GetAverageMinutes() (float64, bool) {
	average, ok := da.GetAverageDuration()
	if !ok {
		return 0, false
	}
	return average / secondsPerMinute, true
}
