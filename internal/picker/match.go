package picker

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/raphi011/wut/internal/store"
	"github.com/sahilm/fuzzy"
)

// Field identifies which part of a command produced a match.
type Field int

const (
	FieldTitle Field = iota
	FieldCommand
)

func (f Field) String() string {
	if f == FieldCommand {
		return "command"
	}
	return "title"
}

// Match is one ranked candidate.
type Match struct {
	Command        store.Command
	Index          int   // position in the candidate set
	Score          int   // higher is better; 0 for the empty query
	Field          Field // field the score came from
	MatchedIndexes []int // byte offsets into the matched field
}

// Score weights. Every matched rune can earn the first-character or
// boundary bonus and the adjacency bonus; every unmatched rune of the text
// costs one point. There is no leading-position term, so for a given query
// and text length the score only grows with contiguity and boundary
// alignment.
const (
	firstCharBonus = 10
	boundaryBonus  = 15 // after a separator or at a camelCase hump
	adjacentBonus  = 20 // directly after the previous matched rune
)

const separators = " -_/."

// MatchText reports whether every rune of query appears in text in order,
// ignoring case, and scores the match. Contiguous runs, the first
// character, and characters after separators or camelCase boundaries score
// higher; unmatched characters lower the score.
//
// The empty query matches everything with score 0 and no positions.
func MatchText(query, text string) (score int, indexes []int, ok bool) {
	if query == "" {
		return 0, nil, true
	}
	// fuzzy treats NUL as end of input and overruns the pattern on it.
	// The replacement has the same width, so offsets stay valid.
	matches := fuzzy.Find(strings.ReplaceAll(query, "\x00", "\x01"), []string{strings.ReplaceAll(text, "\x00", "\x01")})
	if len(matches) == 0 {
		return 0, nil, false
	}
	indexes = matches[0].MatchedIndexes
	return scorePositions(text, indexes), indexes, true
}

// scorePositions scores the matched byte offsets in text.
func scorePositions(text string, offsets []int) int {
	score := len(offsets) - utf8.RuneCountInString(text)
	prevEnd := -1
	for _, o := range offsets {
		r, size := utf8.DecodeRuneInString(text[o:])
		switch {
		case o == 0:
			score += firstCharBonus
		case isBoundary(text[:o], r):
			score += boundaryBonus
		}
		if o == prevEnd {
			score += adjacentBonus
		}
		prevEnd = o + size
	}
	return score
}

// isBoundary reports whether r starts a word given the text before it.
func isBoundary(before string, r rune) bool {
	prev, _ := utf8.DecodeLastRuneInString(before)
	return strings.ContainsRune(separators, prev) || (unicode.IsLower(prev) && unicode.IsUpper(r))
}

// Rank returns the candidates matching query, best first. A candidate's
// score is the better of its title and command scores, the title winning
// ties. Equal scores keep candidate order.
func Rank(query string, candidates []store.Command) []Match {
	ranked := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		m, ok := matchCommand(query, c)
		if !ok {
			continue
		}
		m.Index = i
		ranked = append(ranked, m)
	}

	slices.SortStableFunc(ranked, func(a, b Match) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.Index - b.Index
	})
	return ranked
}

func matchCommand(query string, c store.Command) (Match, bool) {
	titleScore, titleIdx, titleOK := MatchText(query, c.Title)
	cmdScore, cmdIdx, cmdOK := MatchText(query, c.Command)

	switch {
	case titleOK && (!cmdOK || titleScore >= cmdScore):
		return Match{Command: c, Score: titleScore, Field: FieldTitle, MatchedIndexes: titleIdx}, true
	case cmdOK:
		return Match{Command: c, Score: cmdScore, Field: FieldCommand, MatchedIndexes: cmdIdx}, true
	default:
		return Match{}, false
	}
}
