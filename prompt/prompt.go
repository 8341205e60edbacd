package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/domain/entities/selection"
	"bikeshare/explorer/config"
	"bikeshare/utils"

	log "github.com/sirupsen/logrus"
)

const (
	prompterType = "filter-prompt"
	greeting     = "Hello! Let's explore some US bikeshare data!"
)

var ErrInputClosed = errors.New("input closed")

// Prompter asks the user for the filters of a session iteration. Every question is repeated
// until the answer is valid
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
	config *config.ExplorerConfig
}

func NewPrompter(in io.Reader, out io.Writer, explorerConfig *config.ExplorerConfig) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		writer: out,
		config: explorerConfig,
	}
}

func (p *Prompter) getLogMessage(method string, message string) string {
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", prompterType, method, message)
}

// GetFilters asks for the city, the months and the days to analyze
func (p *Prompter) GetFilters() (selection.Selection, error) {
	fmt.Fprintf(p.writer, "%s\n\n", greeting)

	city, err := p.AskCity()
	if err != nil {
		return selection.Selection{}, err
	}

	months, err := p.AskMonths()
	if err != nil {
		return selection.Selection{}, err
	}

	days, err := p.AskDays()
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintln(p.writer, utils.Separator(p.config.SeparatorWidth))

	filters := selection.NewSelection(city, months, days)
	log.Debug(p.getLogMessage("GetFilters", fmt.Sprintf("filters selected: %s", filters)))
	return filters, nil
}

// AskCity returns one of the configured cities
func (p *Prompter) AskCity() (string, error) {
	choices := p.cityChoices()
	for {
		answer, err := p.ask(fmt.Sprintf("Enter the city for which you would like to see data. Choices are %s.", choices))
		if err != nil {
			return "", err
		}

		city, ok := ParseCity(answer, p.config.GetCityNames())
		if ok {
			return city, nil
		}

		log.Debug(p.getLogMessage("AskCity", fmt.Sprintf("invalid city: %q", answer)))
		fmt.Fprintf(p.writer, "Please enter a valid city. Choices are %s.\n\n", choices)
	}
}

// AskMonths returns the selected months, nil meaning all of them
func (p *Prompter) AskMonths() ([]string, error) {
	for {
		fmt.Fprintf(p.writer, "Enter the month or months for which you would like to see data. Choices are %s through %s, or all.\n",
			utils.Title(p.config.Months[0]), utils.Title(p.config.Months[len(p.config.Months)-1]))
		answer, err := p.ask("Separate choices with a comma.")
		if err != nil {
			return nil, err
		}

		months, ok := ParseChoices(answer, p.config.Months)
		if ok {
			return months, nil
		}

		log.Debug(p.getLogMessage("AskMonths", fmt.Sprintf("invalid months: %q", answer)))
		fmt.Fprintf(p.writer, "Please enter a valid month. Choices are %s through %s, or all.\n\n",
			utils.Title(p.config.Months[0]), utils.Title(p.config.Months[len(p.config.Months)-1]))
	}
}

// AskDays returns the selected days of the week, nil meaning all of them
func (p *Prompter) AskDays() ([]string, error) {
	for {
		fmt.Fprintln(p.writer, "Enter the day or days of the week for which you would like to see data, or enter all for all days.")
		answer, err := p.ask("Separate choices with a comma.")
		if err != nil {
			return nil, err
		}

		days, ok := ParseChoices(answer, p.config.Days)
		if ok {
			return days, nil
		}

		log.Debug(p.getLogMessage("AskDays", fmt.Sprintf("invalid days: %q", answer)))
		fmt.Fprint(p.writer, "Please enter a valid day of the week.\n\n")
	}
}

// Confirm asks a yes/no question. Only the configured affirmative answers count as yes
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question)
	if err != nil {
		return false, err
	}
	return utils.ContainsString(utils.Normalize(answer), p.config.AffirmativeAnswers), nil
}

func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprintln(p.writer, question)
	return p.readLine()
}

// readLine returns the next line without its line break. ErrInputClosed is returned once
// there is nothing left to read
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("error reading user input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// cityChoices lists the cities as "Chicago, New York City, or Washington"
func (p *Prompter) cityChoices() string {
	var cities []string
	for _, city := range p.config.GetCityNames() {
		cities = append(cities, utils.Title(city))
	}
	if len(cities) < 2 {
		return strings.Join(cities, "")
	}
	return strings.Join(cities[:len(cities)-1], ", ") + ", or " + cities[len(cities)-1]
}
