// Package links handles targets hit during play: it optionally launches the
// system browser, records each activation in the visit log and keeps the
// latest one for status lines.
package links

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"

	"github.com/vovakirdan/starlinks/internal/storage"
)

func init() {
	// xdg-open and friends would otherwise write over the alt-screen
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Activation is one hit target.
type Activation struct {
	Tag string
	URL string
	At  time.Time
}

// Options configures a Sink.
type Options struct {
	Browser bool           // Launch the system browser for each activation
	Store   *storage.Store // Optional visit log
	Session string         // Recorded with each visit
	Host    string         // "terminal", "window" or "ssh"
	Logger  *log.Logger
}

// Sink implements sim.LinkOpener for the hosts.
type Sink struct {
	opts  Options
	open  func(url string) error
	now   func() time.Time
	last  Activation
	count int
}

// New creates a Sink. A nil logger discards output.
func New(opts Options) *Sink {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := &Sink{opts: opts, now: time.Now}
	if opts.Browser {
		s.open = browser.OpenURL
	}
	return s
}

// OpenLink handles one activation. Browser and storage failures are logged
// and otherwise ignored.
func (s *Sink) OpenLink(tag, url string) {
	s.last = Activation{Tag: tag, URL: url, At: s.now()}
	s.count++

	if s.open != nil {
		open := s.open
		logger := s.opts.Logger
		go func() {
			if err := open(url); err != nil {
				logger.Warn("could not open link", "tag", tag, "url", url, "error", err)
			}
		}()
	}

	if s.opts.Store != nil {
		if _, err := s.opts.Store.RecordVisit(tag, url, s.opts.Session, s.opts.Host); err != nil {
			s.opts.Logger.Warn("could not record visit", "tag", tag, "error", err)
		}
	}
}

// Last returns the most recent activation.
func (s *Sink) Last() (Activation, bool) {
	return s.last, s.count > 0
}

// Count returns the number of activations so far.
func (s *Sink) Count() int {
	return s.count
}
