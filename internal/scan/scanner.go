// Package scan provides a cursor over a string for hand-written, left-to-right parsers that need to probe for
// optional tokens and rewind when they are absent.
package scan

import (
	"errors"
	"strconv"
	"strings"
)

// Scanner consumes a string from left to right. Every Scan method either consumes the token it was asked for and
// reports success, or leaves the cursor where it was and reports failure. Callers that probe ahead for optional
// input save [Scanner.Pos] and [Scanner.Reset] to it afterwards.
type Scanner struct {
	src string
	pos int
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the cursor position as a byte offset into the source.
func (s *Scanner) Pos() int {
	return s.pos
}

// Reset moves the cursor to pos, which should be a value previously returned by [Scanner.Pos].
func (s *Scanner) Reset(pos int) {
	s.pos = min(max(pos, 0), len(s.src))
}

// ScanInt consumes a decimal integer with an optional leading sign. At least one digit must follow the sign.
// Integers too large for an int are still consumed, and return [math.MaxInt] or [math.MinInt].
func (s *Scanner) ScanInt() (int, bool) {
	end := s.pos
	if end < len(s.src) && (s.src[end] == '+' || s.src[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(s.src) && s.src[end] >= '0' && s.src[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	value, err := strconv.ParseInt(s.src[s.pos:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	s.pos = end
	return int(value), true
}

// ScanString consumes literal if the source continues with it.
func (s *Scanner) ScanString(literal string) bool {
	if literal == "" || !strings.HasPrefix(s.src[s.pos:], literal) {
		return false
	}

	s.pos += len(literal)
	return true
}

// ScanCharacters consumes the longest run of bytes that all appear in set, returning the run.
func (s *Scanner) ScanCharacters(set string) (string, bool) {
	end := s.pos
	for end < len(s.src) && strings.IndexByte(set, s.src[end]) != -1 {
		end++
	}

	if end == s.pos {
		return "", false
	}

	run := s.src[s.pos:end]
	s.pos = end
	return run, true
}

// ScanUpToString advances the cursor to the next occurrence of literal, or to the end of the source if there is
// none. It reports whether anything was skipped.
func (s *Scanner) ScanUpToString(literal string) bool {
	return s.skipTo(strings.Index(s.src[s.pos:], literal))
}

// ScanUpToCharacters advances the cursor to the next byte that appears in set, or to the end of the source if there
// is none. It reports whether anything was skipped.
func (s *Scanner) ScanUpToCharacters(set string) bool {
	return s.skipTo(strings.IndexAny(s.src[s.pos:], set))
}

func (s *Scanner) skipTo(index int) bool {
	if index == -1 {
		index = len(s.src) - s.pos
	}

	s.pos += index
	return index > 0
}
