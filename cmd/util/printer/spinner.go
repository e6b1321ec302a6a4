package printer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/theckman/yacspin"
)

// Progress reports the output polling of a submitted task.
type Progress interface {
	Poll(attempt int)
	Done(success bool)
}

var spinnerFrames = [...]string{"◐", "◓", "◑", "◒"}

// Spinner animates a single line while the task is being solved.
type Spinner struct {
	spin    *yacspin.Spinner
	started time.Time
}

func NewSpinner(w io.Writer, prefix string) (*Spinner, error) {
	cfg := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		CharSet:           spinnerFrames[:],
		Writer:            w,
		Prefix:            prefix + " ",
		Suffix:            " ",
		StopCharacter:     "✓",
		StopFailCharacter: "✗",
		StopMessage:       "done",
		StopFailMessage:   "failed",
	}
	spin, err := yacspin.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}
	return &Spinner{spin: spin}, nil
}

// Poll starts the spinner on the first query and updates its message.
func (s *Spinner) Poll(attempt int) {
	if s.started.IsZero() {
		s.started = time.Now()
		if err := s.spin.Start(); err != nil {
			log.Debug().Err(err).Msg("failed to start spinner")
		}
	}
	s.spin.Message(fmt.Sprintf("waiting for output, query %d (%s)",
		attempt, time.Since(s.started).Round(time.Second)))
}

func (s *Spinner) Done(success bool) {
	if s.started.IsZero() {
		return
	}
	if success {
		_ = s.spin.Stop()
		return
	}
	_ = s.spin.StopFail()
}

// Lines is the Progress used when the output is not a terminal: one
// "Waiting..." line per query.
type Lines struct {
	w io.Writer
}

func NewLines(w io.Writer) *Lines {
	return &Lines{w: w}
}

func (l *Lines) Poll(attempt int) {
	fmt.Fprintf(l.w, "Waiting...%s\n", strings.Repeat(".", (attempt-1)%3))
}

func (l *Lines) Done(bool) {}

// NewProgress returns a Spinner when w is a terminal and Lines otherwise.
func NewProgress(w io.Writer, prefix string) Progress {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if s, err := NewSpinner(w, prefix); err == nil {
			return s
		}
	}
	return NewLines(w)
}
