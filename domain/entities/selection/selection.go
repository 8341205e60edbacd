package selection

import "strings"

const All = "all"

// Selection filters chosen by the user for one session iteration
// + City: one of the configured cities
// + Months: canonical month names to keep. Empty means all months
// + Days: canonical day names to keep. Empty means all days
type Selection struct {
	City   string
	Months []string
	Days   []string
}

func NewSelection(city string, months []string, days []string) Selection {
	return Selection{
		City:   city,
		Months: append([]string(nil), months...),
		Days:   append([]string(nil), days...),
	}
}

func (s Selection) AllMonths() bool {
	return len(s.Months) == 0
}

func (s Selection) AllDays() bool {
	return len(s.Days) == 0
}

func (s Selection) String() string {
	months := All
	if !s.AllMonths() {
		months = strings.Join(s.Months, ",")
	}
	days := All
	if !s.AllDays() {
		days = strings.Join(s.Days, ",")
	}
	return "city: " + s.City + ", months: " + months + ", days: " + days
}
