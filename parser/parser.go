// Package parser recognizes enum blocks in comment-stripped definition
// files and builds the immutable enum definitions they describe.
//
// A definition file consists of zero or more blocks of the form
//
//	enum NAME [;]
//	  <option-line>*
//	values
//	  <identifier> [<name>]
//	end
//
// Blocks are parsed in one forward pass: the logical-line stream is first
// split into materialized (header, body) groups, validating that every
// block is closed by "end", and each enum is then built purely from its
// own body.
package parser

import (
	"regexp"

	"github.com/broady/specenum/ir"
	"github.com/broady/specenum/scanner"
)

var (
	// headerPattern matches "enum NAME", optionally followed by a
	// trailing semicolon and nothing else.
	headerPattern = regexp.MustCompile(`^\s*enum\s+(\w+)\s*(?:;\s*)?$`)

	// valuesPattern matches the "values" line separating options from
	// enum values.
	valuesPattern = regexp.MustCompile(`^\s*values\s*$`)

	// endPattern matches the "end" line terminating an enum block.
	endPattern = regexp.MustCompile(`^\s*end\s*$`)
)

// Parser accumulates enum definitions over one compilation run. It owns
// the definition set; definitions are added strictly in file and line
// order, and duplicate names fail whether they collide within one file
// or across files.
type Parser struct {
	set *ir.Set
}

// New creates a parser with an empty definition set.
func New() *Parser {
	return &Parser{set: ir.NewSet()}
}

// Definitions returns the accumulated definition set.
func (p *Parser) Definitions() *ir.Set {
	return p.set
}

// Parse strips comments from the given raw lines and parses the result
// as enum definitions, adding them to the definition set. The first
// error encountered aborts the whole run.
func (p *Parser) Parse(lines []string) error {
	clean, err := scanner.Clean(lines)
	if err != nil {
		return err
	}
	return p.ParseClean(clean)
}

// ParseClean parses the given logical lines as enum definitions.
// Comments and blank lines must already be removed.
func (p *Parser) ParseClean(lines []string) error {
	blocks, err := splitBlocks(lines)
	if err != nil {
		return err
	}
	for _, b := range blocks {
		if p.set.Lookup(b.name) != nil {
			return ir.Errorf(ir.CodeDuplicateEnum, "duplicate enum name: %s", b.name)
		}
		e, err := buildEnum(b.name, b.body)
		if err != nil {
			return err
		}
		if err := p.set.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// block is one materialized enum block: its header name and the logical
// lines between the header and its "end".
type block struct {
	name string
	body []string
}

// splitBlocks groups the top-level logical-line stream into enum blocks,
// validating block termination during the split.
func splitBlocks(lines []string) ([]block, error) {
	var blocks []block
	open := false

	for _, line := range lines {
		if !open {
			m := headerPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, ir.Errorf(ir.CodeSyntax, "unexpected line: %s", line)
			}
			blocks = append(blocks, block{name: m[1]})
			open = true
			continue
		}
		if endPattern.MatchString(line) {
			open = false
			continue
		}
		cur := &blocks[len(blocks)-1]
		cur.body = append(cur.body, line)
	}

	if open {
		return nil, ir.Errorf(ir.CodeUnterminated, "enum %s has no end before end of input", blocks[len(blocks)-1].name)
	}
	return blocks, nil
}

// buildEnum constructs one enum definition from its materialized body:
// the option lines up to the "values" marker, then one value per line.
func buildEnum(name string, body []string) (*ir.Enum, error) {
	sep := -1
	for i, line := range body {
		if valuesPattern.MatchString(line) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, ir.Errorf(ir.CodeSyntax, "enum %s has no values line", name)
	}

	b := newBuilder(name)
	for _, line := range body[:sep] {
		if err := b.apply(line); err != nil {
			return nil, err
		}
	}

	values := make([]*ir.Value, 0, len(body)-sep-1)
	for _, line := range body[sep+1:] {
		v, err := ir.ParseValue(line)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return b.finish(values)
}
