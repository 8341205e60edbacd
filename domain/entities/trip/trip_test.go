package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTripData_DerivedFields(t *testing.T) {
	startTime := time.Date(2017, time.March, 4, 17, 30, 0, 0, time.UTC)
	td := NewTripData(3, startTime, "2017-03-04 17:45:00", 900, "Canal St", "State St", "Subscriber")

	assert.Equal(t, 3, td.Index)
	assert.Equal(t, 3, td.Month)
	assert.Equal(t, "Saturday", td.DayOfWeek)
	assert.Equal(t, 17, td.GetStartHour())
	assert.Equal(t, "Canal St to State St", td.StationPair.Label())
	assert.False(t, td.HasBirthYear)

	td.SetBirthYear(1989)
	assert.True(t, td.HasBirthYear)
	assert.Equal(t, 1989, td.BirthYear)
}
