package paginator

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/dataset"
	"bikeshare/domain/entities/trip"
	"bikeshare/explorer/config"

	log "github.com/sirupsen/logrus"
)

const (
	paginatorType   = "raw-data-paginator"
	firstQuestion   = "Would you like to see raw data?"
	moreQuestion    = "Would you like to see more?"
	noMoreTripsText = "No more trips to display."
	emptyCell       = "-"
)

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Paginator prints the trips of a Dataset, one page at a time, while the user asks for more
type Paginator struct {
	confirmer Confirmer
	writer    io.Writer
	config    *config.ExplorerConfig
}

func NewPaginator(confirmer Confirmer, writer io.Writer, explorerConfig *config.ExplorerConfig) *Paginator {
	return &Paginator{
		confirmer: confirmer,
		writer:    writer,
		config:    explorerConfig,
	}
}

func (p *Paginator) getLogMessage(method string, message string) string {
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", paginatorType, method, message)
}

// Display asks once whether to show raw data and then prints pages of PageSize trips
// until the user declines or there are no trips left
func (p *Paginator) Display(ds *dataset.Dataset) error {
	showData, err := p.confirmer.Confirm(firstQuestion)
	if err != nil || !showData {
		return err
	}

	for offset := 0; ; offset += p.config.PageSize {
		page := ds.Page(offset, p.config.PageSize)
		if len(page) == 0 {
			fmt.Fprintln(p.writer, noMoreTripsText)
			log.Debug(p.getLogMessage("Display", fmt.Sprintf("offset %v is past the last trip", offset)))
			return nil
		}

		if err := p.printPage(ds, page); err != nil {
			return err
		}

		showMore, err := p.confirmer.Confirm(moreQuestion)
		if err != nil || !showMore {
			return err
		}
	}
}

func (p *Paginator) printPage(ds *dataset.Dataset, page []*trip.TripData) error {
	tabWriter := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tabWriter, strings.Join(p.getHeaders(ds), "\t"))
	for _, tripData := range page {
		fmt.Fprintln(tabWriter, strings.Join(p.getRow(ds, tripData), "\t"))
	}
	return tabWriter.Flush()
}

func (p *Paginator) getHeaders(ds *dataset.Dataset) []string {
	columns := p.config.Columns
	headers := []string{"", columns.StartTime, columns.EndTime, columns.Duration, columns.StartStation, columns.EndStation, columns.UserType}
	if ds.HasGender {
		headers = append(headers, columns.Gender)
	}
	if ds.HasBirthYear {
		headers = append(headers, columns.BirthYear)
	}
	return append(headers, "month", "day_of_week", "start_stop_combos")
}

func (p *Paginator) getRow(ds *dataset.Dataset, tripData *trip.TripData) []string {
	row := []string{
		strconv.Itoa(tripData.Index),
		tripData.StartTime.Format(p.config.StartTimeLayout),
		orEmptyCell(tripData.EndTime),
		strconv.FormatFloat(tripData.Duration, 'f', -1, 64),
		orEmptyCell(tripData.StartStation),
		orEmptyCell(tripData.EndStation),
		orEmptyCell(tripData.UserType),
	}
	if ds.HasGender {
		row = append(row, orEmptyCell(tripData.Gender))
	}
	if ds.HasBirthYear {
		birthYear := emptyCell
		if tripData.HasBirthYear {
			birthYear = strconv.Itoa(tripData.BirthYear)
		}
		row = append(row, birthYear)
	}
	return append(row, strconv.Itoa(tripData.Month), tripData.DayOfWeek, tripData.StationPair.Label())
}

func orEmptyCell(value string) string {
	if value == "" {
		return emptyCell
	}
	return value
}
