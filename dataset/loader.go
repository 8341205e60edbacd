package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"bikeshare/domain/entities/selection"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

const (
	loaderType = "dataset-loader"
	missingCol = -1
)

// columnIndexes position of each field in a CSV record. Optional columns are missingCol when absent
type columnIndexes struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// Loader reads the dataset of a city and applies the filters of a Selection
type Loader struct {
	config *config.ExplorerConfig
}

func NewLoader(explorerConfig *config.ExplorerConfig) *Loader {
	return &Loader{
		config: explorerConfig,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderType, method, message)
}

// LoadData loads the dataset of the selected city, derives the month, day of week and
// station pair of every trip and then keeps the trips that match the selected months and days
func (l *Loader) LoadData(sel selection.Selection) (*Dataset, error) {
	datasetPath, ok := l.config.GetDatasetPath(sel.City)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, sel.City)
	}

	months, err := l.MonthNumbers(sel.Months)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Open(datasetPath)
	if err != nil {
		log.Error(l.getLogMessage("LoadData", fmt.Sprintf("error opening %s", datasetPath), err))
		return nil, fmt.Errorf("error opening dataset of %s: %w", sel.City, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("LoadData", fmt.Sprintf("error closing %s", datasetPath), err))
		}
	}(dataFile)

	fullDataset, err := l.ReadTrips(dataFile)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset of %s: %w", sel.City, err)
	}
	log.Debug(l.getLogMessage("LoadData", fmt.Sprintf("%v trips read from %s", fullDataset.Len(), datasetPath), nil))

	filtered := fullDataset.Filter(months, l.DayNames(sel.Days))
	log.Debug(l.getLogMessage("LoadData", fmt.Sprintf("[%s] %v trips left after filtering", sel, filtered.Len()), nil))

	return filtered, nil
}

// ReadTrips parses a CSV with a header row. Columns are found by their header name, gender and
// birth year are optional. Any malformed record aborts the read
func (l *Loader) ReadTrips(reader io.Reader) (*Dataset, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = rune(l.config.CSVDelimiter[0])
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns, err := l.getColumnIndexes(headers)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		HasGender:    columns.gender != missingCol,
		HasBirthYear: columns.birthYear != missingCol,
	}

	for index := 0; ; index++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: %w", ErrInvalidTripData, index, err)
		}

		tripData, err := l.getTripData(index, record, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: row %v: %w", ErrInvalidTripData, index, err)
		}
		ds.Trips = append(ds.Trips, tripData)
	}

	return ds, nil
}

// MonthNumbers maps canonical month names to their 1-based position in the configured months
func (l *Loader) MonthNumbers(months []string) ([]int, error) {
	var numbers []int
	for _, month := range months {
		position := utils.IndexOfString(strings.ToLower(month), l.config.Months)
		if position < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMonth, month)
		}
		numbers = append(numbers, position+1)
	}
	return numbers, nil
}

// DayNames capitalizes the selected days so they can be compared against TripData.DayOfWeek
func (l *Loader) DayNames(days []string) []string {
	var names []string
	for _, day := range days {
		names = append(names, utils.Title(day))
	}
	return names
}

func (l *Loader) getColumnIndexes(headers []string) (columnIndexes, error) {
	positions := make(map[string]int, len(headers))
	for i, header := range headers {
		cleanHeader := strings.TrimPrefix(header, "\ufeff")
		cleanHeader = strings.TrimSpace(strings.ReplaceAll(cleanHeader, `"`, ""))
		positions[cleanHeader] = i
	}

	required := func(name string) (int, error) {
		position, ok := positions[name]
		if !ok {
			return missingCol, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return position, nil
	}

	optional := func(name string) int {
		position, ok := positions[name]
		if !ok {
			log.Debug(l.getLogMessage("getColumnIndexes", fmt.Sprintf("optional column %s not found", name), nil))
			return missingCol
		}
		return position
	}

	columnNames := l.config.Columns
	var columns columnIndexes
	var err error
	if columns.startTime, err = required(columnNames.StartTime); err != nil {
		return columns, err
	}
	if columns.endTime, err = required(columnNames.EndTime); err != nil {
		return columns, err
	}
	if columns.duration, err = required(columnNames.Duration); err != nil {
		return columns, err
	}
	if columns.startStation, err = required(columnNames.StartStation); err != nil {
		return columns, err
	}
	if columns.endStation, err = required(columnNames.EndStation); err != nil {
		return columns, err
	}
	if columns.userType, err = required(columnNames.UserType); err != nil {
		return columns, err
	}
	columns.gender = optional(columnNames.Gender)
	columns.birthYear = optional(columnNames.BirthYear)

	return columns, nil
}

func (l *Loader) getTripData(index int, record []string, columns columnIndexes) (*trip.TripData, error) {
	startTimeStr := strings.TrimSpace(record[columns.startTime])
	startTime, err := time.Parse(l.config.StartTimeLayout, startTimeStr)
	if err != nil {
		log.Debug(l.getLogMessage("getTripData", fmt.Sprintf("invalid start time: %q", startTimeStr), err))
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, startTimeStr)
	}

	durationStr := strings.TrimSpace(record[columns.duration])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		log.Debug(l.getLogMessage("getTripData", fmt.Sprintf("invalid duration: %q", durationStr), err))
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, durationStr)
	}

	tripData := trip.NewTripData(
		index,
		startTime,
		strings.TrimSpace(record[columns.endTime]),
		duration,
		strings.TrimSpace(record[columns.startStation]),
		strings.TrimSpace(record[columns.endStation]),
		strings.TrimSpace(record[columns.userType]),
	)

	if columns.gender != missingCol {
		tripData.Gender = strings.TrimSpace(record[columns.gender])
	}

	if columns.birthYear != missingCol {
		birthYearStr := strings.TrimSpace(record[columns.birthYear])
		if birthYearStr != "" {
			// years are stored as floats, e.g. 1992.0
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil {
				log.Debug(l.getLogMessage("getTripData", fmt.Sprintf("invalid birth year: %q", birthYearStr), err))
				return nil, fmt.Errorf("%w: %q", ErrInvalidYear, birthYearStr)
			}
			tripData.SetBirthYear(int(math.Round(birthYear)))
		}
	}

	return tripData, nil
}
