package userreporter

import (
	"io"

	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/explorer/config"
	"bikeshare/reporters/report"

	log "github.com/sirupsen/logrus"
)

const (
	reporterType          = "user-reporter"
	title                 = "Calculating User Stats..."
	unknownValue          = "Unknown"
	noGenderMessage       = "Gender data does not exist for this location."
	noBirthYearMessage    = "Birth year data does not exist for this location."
	noBirthYearValuesText = "No birth year values recorded for the selected trips."
)

// GenderCounts Present is false when the dataset has no gender column
type GenderCounts struct {
	Present bool
	Counts  []frequencycounter.Entry[string]
}

// BirthYearStats Present is false when the dataset has no birth year column.
// Recorded is false when the column exists but none of the trips has a value
type BirthYearStats struct {
	Present    bool
	Recorded   bool
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats counts are sorted by count in descending order, blank values are counted as Unknown
type UserStats struct {
	UserTypes  []frequencycounter.Entry[string]
	Genders    GenderCounts
	BirthYears BirthYearStats
}

type UserReporter struct {
	config *config.ExplorerConfig
}

func NewUserReporter(explorerConfig *config.ExplorerConfig) *UserReporter {
	return &UserReporter{
		config: explorerConfig,
	}
}

func (ur *UserReporter) GetType() string {
	return reporterType
}

func ComputeUserStats(ds *dataset.Dataset) UserStats {
	userTypes := frequencycounter.NewFrequencyCounter[string]()
	genders := frequencycounter.NewFrequencyCounter[string]()
	birthYears := frequencycounter.NewFrequencyCounter[int]()
	for _, tripData := range ds.Trips {
		userTypes.Add(valueOrUnknown(tripData.UserType))
		if ds.HasGender {
			genders.Add(valueOrUnknown(tripData.Gender))
		}
		if tripData.HasBirthYear {
			birthYears.Add(tripData.BirthYear)
		}
	}

	stats := UserStats{
		UserTypes: userTypes.Ranking(),
		Genders: GenderCounts{
			Present: ds.HasGender,
		},
		BirthYears: BirthYearStats{
			Present: ds.HasBirthYear,
		},
	}

	if ds.HasGender {
		stats.Genders.Counts = genders.Ranking()
	}

	if ds.HasBirthYear && !birthYears.IsEmpty() {
		stats.BirthYears.Recorded = true
		stats.BirthYears.Earliest, _ = birthYears.Min()
		stats.BirthYears.MostRecent, _ = birthYears.Max()
		mode, _ := birthYears.Mode()
		stats.BirthYears.MostCommon = mode.Value
	}

	return stats
}

// Report prints the user types, the genders and the birth years of the users. Cities without
// gender or birth year data get a notice instead
func (ur *UserReporter) Report(writer io.Writer, ds *dataset.Dataset) error {
	section := report.Begin(writer, title, ur.config.SeparatorWidth)
	stats := ComputeUserStats(ds)

	section.Println("These are the user types and number of each:")
	if err := printCounts(section, stats.UserTypes); err != nil {
		return err
	}
	section.Println("")

	if stats.Genders.Present {
		section.Println("These are the number of users of each gender:")
		if err := printCounts(section, stats.Genders.Counts); err != nil {
			return err
		}
		section.Println("")
	} else {
		log.Debugf("[reporter: %s][method: Report][status: OK] dataset without gender column", reporterType)
		section.Println(noGenderMessage)
	}

	switch {
	case !stats.BirthYears.Present:
		log.Debugf("[reporter: %s][method: Report][status: OK] dataset without birth year column", reporterType)
		section.Println(noBirthYearMessage)
	case !stats.BirthYears.Recorded:
		section.Println(noBirthYearValuesText)
	default:
		section.Printf("The earliest birth year of a user was %d.", stats.BirthYears.Earliest)
		section.Printf("The most recent birth year of a user was %d.", stats.BirthYears.MostRecent)
		section.Printf("The most common birth year of users was %d.", stats.BirthYears.MostCommon)
	}

	section.End()
	return nil
}

func printCounts(section *report.Section, entries []frequencycounter.Entry[string]) error {
	if len(entries) == 0 {
		section.Println(report.NoTripsMessage)
		return nil
	}

	values := make([]string, 0, len(entries))
	counts := make([]int, 0, len(entries))
	for _, entry := range entries {
		values = append(values, entry.Value)
		counts = append(counts, entry.Count)
	}
	return section.PrintCounts(values, counts)
}

func valueOrUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}
