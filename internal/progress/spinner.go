package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows an animated status on a terminal. On anything that is not a
// TTY it does nothing, so piped output stays a single report line.
type Spinner struct {
	caps    TerminalCapabilities
	w       io.Writer
	spinner *spinner.Spinner
}

// NewSpinner creates a spinner writing to w with the given capabilities.
func NewSpinner(caps TerminalCapabilities, w io.Writer) *Spinner {
	return &Spinner{caps: caps, w: w}
}

// Start begins animating with msg as suffix. Calling Start while running
// only updates the message.
func (s *Spinner) Start(msg string) {
	if !s.caps.IsTTY {
		return
	}
	if s.spinner != nil {
		s.spinner.Lock()
		s.spinner.Suffix = " " + msg
		s.spinner.Unlock()
		return
	}

	opt := spinner.WithWriter(s.w)
	if f, ok := s.w.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}

	symbols := SelectSymbols(s.caps)
	s.spinner = spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond, opt)
	s.spinner.Suffix = " " + msg
	s.spinner.Start()
}

// Stop halts the animation and clears the line. Safe to call when not running.
func (s *Spinner) Stop() {
	if s.spinner == nil {
		return
	}
	s.spinner.Stop()
	s.spinner = nil
}

// Active reports whether the spinner is animating.
func (s *Spinner) Active() bool {
	return s.spinner != nil
}
