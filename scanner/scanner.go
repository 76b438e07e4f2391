// Package scanner strips comments from enum definition files, turning raw
// physical lines into logical lines.
//
// Definition files support # and // end-of-line comments and /* ... */
// block comments. Block comments may span multiple physical lines but do
// not nest; text interrupted by a multi-line block comment is joined into
// a single logical line. When a line-comment marker and a block-comment
// opener share a physical line, the leftmost one wins.
package scanner

import (
	"strings"

	"github.com/broady/specenum/ir"
)

// State is the comment scanner's position between physical lines.
type State int

const (
	// Outside means the scanner is not inside a block comment.
	Outside State = iota

	// InBlockComment means a /* opened on an earlier position has not
	// been closed yet.
	InBlockComment
)

// Split consumes one raw physical line and returns the next state along
// with the non-comment text fragments found on the line, each trimmed of
// surrounding whitespace. It is a pure transition function; callers
// thread the state between lines and decide when a logical line ends
// (whenever a physical line finishes in the Outside state).
func Split(state State, line string) (State, []string) {
	var parts []string
	for line != "" {
		if state == InBlockComment {
			end := strings.Index(line, "*/")
			if end < 0 {
				return state, parts
			}
			line = line[end+2:]
			state = Outside
			continue
		}

		cut, marker := firstMarker(line)
		if content := strings.TrimSpace(line[:cut]); content != "" {
			parts = append(parts, content)
		}
		if marker != markerBlock {
			// End of line, or a line comment swallowing the rest.
			return state, parts
		}
		line = line[cut+2:]
		state = InBlockComment
	}
	return state, parts
}

type marker int

const (
	markerNone marker = iota
	markerLine
	markerBlock
)

// firstMarker finds the leftmost comment marker on a line still outside
// any block comment. Returns the marker's byte offset (len(line) if none)
// and its kind.
func firstMarker(line string) (int, marker) {
	cut, kind := len(line), markerNone
	if i := strings.Index(line, "#"); i >= 0 && i < cut {
		cut, kind = i, markerLine
	}
	if i := strings.Index(line, "//"); i >= 0 && i < cut {
		cut, kind = i, markerLine
	}
	if i := strings.Index(line, "/*"); i >= 0 && i < cut {
		cut, kind = i, markerBlock
	}
	return cut, kind
}

// Clean strips comments and surrounding whitespace from the given raw
// lines. If a block comment starts in one line and ends in another, the
// remaining parts are joined with single spaces and returned as one
// logical line. Blank and comment-only lines produce no logical line.
//
// Fails if the input ends while still inside a block comment.
func Clean(lines []string) ([]string, error) {
	state := Outside
	var pending []string
	var out []string

	for _, line := range lines {
		var parts []string
		state, parts = Split(state, line)
		pending = append(pending, parts...)

		if state == Outside && len(pending) > 0 {
			out = append(out, strings.Join(pending, " "))
			pending = nil
		}
	}

	if state == InBlockComment {
		return nil, ir.NewError(ir.CodeUnterminated, "unexpected end of input while scanning block comment")
	}
	return out, nil
}
