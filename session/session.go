package session

import (
	"errors"
	"fmt"
	"io"

	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/paginator"
	"bikeshare/prompt"
	"bikeshare/reporters/factory"

	log "github.com/sirupsen/logrus"
)

const (
	sessionType     = "session"
	restartQuestion = "\nWould you like to restart? Enter yes or no."
)

// Session runs the explorer: ask for filters, load the data, print the reports and the raw
// data, and start over while the user wants to
type Session struct {
	prompter  *prompt.Prompter
	loader    *dataset.Loader
	reporters []factory.IReporter
	paginator *paginator.Paginator
	writer    io.Writer
}

func NewSession(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer) (*Session, error) {
	reporters, err := factory.NewReporters(explorerConfig)
	if err != nil {
		return nil, err
	}

	prompter := prompt.NewPrompter(in, out, explorerConfig)
	return &Session{
		prompter:  prompter,
		loader:    dataset.NewLoader(explorerConfig),
		reporters: reporters,
		paginator: paginator.NewPaginator(prompter, out, explorerConfig),
		writer:    out,
	}, nil
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", sessionType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", sessionType, method, message)
}

// Run repeats the session iterations until the user does not want to restart or the input
// is closed. Errors loading the data end the session
func (s *Session) Run() error {
	for iteration := 1; ; iteration++ {
		log.Debug(s.getLogMessage("Run", fmt.Sprintf("starting iteration %v", iteration), nil))

		restart, err := s.runIteration()
		if errors.Is(err, prompt.ErrInputClosed) {
			log.Info(s.getLogMessage("Run", "input closed, finishing session", nil))
			return nil
		}
		if err != nil {
			log.Error(s.getLogMessage("Run", fmt.Sprintf("iteration %v failed", iteration), err))
			return err
		}
		if !restart {
			log.Debug(s.getLogMessage("Run", "user does not want to restart", nil))
			return nil
		}
	}
}

func (s *Session) runIteration() (bool, error) {
	filters, err := s.prompter.GetFilters()
	if err != nil {
		return false, err
	}

	ds, err := s.loader.LoadData(filters)
	if err != nil {
		return false, err
	}

	for _, reporter := range s.reporters {
		if err := reporter.Report(s.writer, ds); err != nil {
			return false, fmt.Errorf("error running %s: %w", reporter.GetType(), err)
		}
	}

	if err := s.paginator.Display(ds); err != nil {
		return false, err
	}

	return s.prompter.Confirm(restartQuestion)
}
