package picker

import (
	"unicode/utf8"

	"github.com/raphi011/wut/internal/store"
)

// Status of a selection.
type Status int

const (
	Typing Status = iota
	Confirmed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "typing"
	}
}

// State is the selection state machine. It re-ranks the full candidate set
// whenever the query changes and keeps the cursor inside the ranked list.
type State struct {
	candidates []store.Command
	query      string
	ranked     []Match
	cursor     int
	status     Status
}

// NewState starts a selection over candidates with an empty query.
func NewState(candidates []store.Command) *State {
	s := &State{candidates: candidates}
	s.rerank()
	return s
}

// Handle applies one key event. Events after a terminal status are ignored.
func (s *State) Handle(k Key) {
	if s.status != Typing {
		return
	}

	switch k.Kind {
	case KeyChar:
		if k.Text == "" {
			return
		}
		s.query += k.Text
		s.rerank()
	case KeyBackspace:
		if s.query == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(s.query)
		s.query = s.query[:len(s.query)-size]
		s.rerank()
	case KeyDown:
		if s.cursor < len(s.ranked)-1 {
			s.cursor++
		}
	case KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
	case KeyEnter:
		if len(s.ranked) > 0 {
			s.status = Confirmed
		}
	case KeyCancel:
		s.status = Cancelled
	}
}

func (s *State) rerank() {
	s.ranked = Rank(s.query, s.candidates)
	s.cursor = 0
}

// Query returns the current query.
func (s *State) Query() string { return s.query }

// Ranked returns the ranked matches for the current query.
func (s *State) Ranked() []Match { return s.ranked }

// Cursor returns the index of the highlighted entry in Ranked.
func (s *State) Cursor() int { return s.cursor }

// Status returns the current status.
func (s *State) Status() Status { return s.status }

// Total returns the size of the candidate set.
func (s *State) Total() int { return len(s.candidates) }

// Selected returns the highlighted match, if any.
func (s *State) Selected() (Match, bool) {
	if len(s.ranked) == 0 {
		return Match{}, false
	}
	return s.ranked[s.cursor], true
}
