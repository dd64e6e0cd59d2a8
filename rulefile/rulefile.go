// Package rulefile loads and stores grammar rule tables.
//
// The text format has one numbered production per line:
//
//	1. S -> AB
//	2. S -> AC
//	3. A -> ε
//
// Blank lines and lines starting with '#' are ignored. Any other line that
// does not follow the format is rejected with a *LineError wrapping
// ErrMalformedRule; a malformed table never reaches the search engine.
//
// The YAML format carries the same data plus an optional start symbol:
//
//	start: S
//	rules:
//	  - {id: 1, head: S, body: AB}
package rulefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/grammar"
)

// Arrow separates a head from its body in the text format.
const Arrow = "->"

var (
	// ErrMalformedRule marks a rule line or entry that cannot be parsed.
	ErrMalformedRule = errors.New("rulefile: malformed rule")

	// ErrEmptyTable is returned when a source holds no rules at all.
	ErrEmptyTable = errors.New("rulefile: no rules defined")
)

// LineError locates a rejected rule. Line is 1-based; for YAML sources it is
// the 1-based index of the entry in the rules list.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("rulefile: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Ruleset is a loaded rule table and the start symbol to derive from.
type Ruleset struct {
	Start   string
	Grammar *grammar.Grammar
}

// Entry is one rule in the YAML format.
type Entry struct {
	ID   int    `yaml:"id"`
	Head string `yaml:"head"`
	Body string `yaml:"body"`
}

// Document is the YAML representation of a Ruleset.
type Document struct {
	Start string  `yaml:"start,omitempty"`
	Rules []Entry `yaml:"rules"`
}

// Load reads a rule file, choosing YAML for .yaml/.yml and text otherwise.
func Load(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rulefile: open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Parse reads the text format. Rules of each head are sorted by ID.
func Parse(r io.Reader) (*Ruleset, error) {
	g := grammar.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, head, body, err := parseLine(line)
		if err == nil {
			err = g.AddRule(head, id, body)
		}
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rulefile: read: %w", err)
	}

	return finish(grammar.DefaultStart, g)
}

// parseLine splits "<id>. <head> -> <body>".
func parseLine(line string) (id int, head, body string, err error) {
	dot := strings.IndexByte(line, '.')
	if dot <= 0 {
		return 0, "", "", fmt.Errorf("%w: missing rule number", ErrMalformedRule)
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(line[:dot]))
	if convErr != nil {
		return 0, "", "", fmt.Errorf("%w: rule number %q", ErrMalformedRule, line[:dot])
	}
	rest := line[dot+1:]
	arrow := strings.Index(rest, Arrow)
	if arrow < 0 {
		return 0, "", "", fmt.Errorf("%w: missing %q", ErrMalformedRule, Arrow)
	}
	head = strings.TrimSpace(rest[:arrow])
	body = strings.TrimSpace(rest[arrow+len(Arrow):])
	if head == "" {
		return 0, "", "", fmt.Errorf("%w: empty head", ErrMalformedRule)
	}
	if body == "" {
		return 0, "", "", fmt.Errorf("%w: empty body, write %s for an empty production", ErrMalformedRule, grammar.Epsilon)
	}

	return id, head, body, nil
}

// ParseYAML reads the YAML format.
func ParseYAML(r io.Reader) (*Ruleset, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRule, err)
	}
	g := grammar.New()
	for i, e := range doc.Rules {
		text := fmt.Sprintf("%d. %s %s %s", e.ID, e.Head, Arrow, e.Body)
		var err error
		switch {
		case strings.TrimSpace(e.Head) == "":
			err = fmt.Errorf("%w: empty head", ErrMalformedRule)
		case strings.TrimSpace(e.Body) == "":
			err = fmt.Errorf("%w: empty body, write %s for an empty production", ErrMalformedRule, grammar.Epsilon)
		default:
			err = g.AddRule(strings.TrimSpace(e.Head), e.ID, strings.TrimSpace(e.Body))
		}
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: text, Err: err}
		}
	}
	start := strings.TrimSpace(doc.Start)
	if start == "" {
		start = grammar.DefaultStart
	}

	return finish(start, g)
}

func finish(start string, g *grammar.Grammar) (*Ruleset, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyTable
	}
	g.SortRules()

	return &Ruleset{Start: start, Grammar: g}, nil
}

// Write stores g in the text format, heads in registration order.
// A nil grammar fails with ErrEmptyTable.
func Write(w io.Writer, g *grammar.Grammar) error {
	if g == nil {
		return ErrEmptyTable
	}
	bw := bufio.NewWriter(w)
	for _, head := range g.Heads() {
		for _, r := range g.Rules(head) {
			body := r.Body
			if body == "" {
				body = grammar.Epsilon
			}
			if _, err := fmt.Fprintf(bw, "%d. %s %s %s\n", r.ID, head, Arrow, body); err != nil {
				return fmt.Errorf("rulefile: write: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rulefile: write: %w", err)
	}

	return nil
}

// WriteYAML stores rs in the YAML format.
func WriteYAML(w io.Writer, rs *Ruleset) error {
	if rs == nil || rs.Grammar == nil {
		return ErrEmptyTable
	}
	doc := Document{Start: rs.Start}
	for _, head := range rs.Grammar.Heads() {
		for _, r := range rs.Grammar.Rules(head) {
			doc.Rules = append(doc.Rules, Entry{ID: r.ID, Head: head, Body: r.Body})
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("rulefile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes rs to path in the format implied by its extension.
func Save(path string, rs *Ruleset) error {
	if rs == nil || rs.Grammar == nil {
		return ErrEmptyTable
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rulefile: create %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = WriteYAML(f, rs)
	default:
		err = Write(f, rs.Grammar)
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("rulefile: close %s: %w", path, cerr)
	}

	return err
}
