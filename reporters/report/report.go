package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"bikeshare/utils"
)

const NoTripsMessage = "No trips match the selected filters."

// Section prints the output of a reporter: a title, the statistics and how long they took
type Section struct {
	writer         io.Writer
	separatorWidth int
	start          time.Time
}

// Begin prints the title of the section and starts measuring the elapsed time
func Begin(writer io.Writer, title string, separatorWidth int) *Section {
	fmt.Fprintf(writer, "\n%s\n\n", title)
	return &Section{
		writer:         writer,
		separatorWidth: separatorWidth,
		start:          time.Now(),
	}
}

func (s *Section) Println(line string) {
	fmt.Fprintln(s.writer, line)
}

func (s *Section) Printf(format string, args ...any) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// PrintCounts prints one value per line followed by its count, aligned in two columns
func (s *Section) PrintCounts(values []string, counts []int) error {
	tabWriter := tabwriter.NewWriter(s.writer, 0, 0, 4, ' ', 0)
	for i := range values {
		fmt.Fprintf(tabWriter, "%s\t%v\n", values[i], counts[i])
	}
	return tabWriter.Flush()
}

// End prints the elapsed time since Begin and the separator line
func (s *Section) End() {
	elapsed := time.Since(s.start)
	fmt.Fprintf(s.writer, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(s.writer, utils.Separator(s.separatorWidth))
}
