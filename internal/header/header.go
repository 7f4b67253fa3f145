// Package header tokenizes OSGi-style manifest header values into an ordered
// ir.Directive.
//
// Grammar:
//
//	header    = clause { "," clause }
//	clause    = pattern { ";" pattern } { ";" attribute }
//	attribute = name ( "=" | ":=" ) value
//	value     = token | "'" ... "'" | '"' ... '"'
//
// Several patterns in one clause share its attributes, so
// "a;b;scope=test" yields two clauses with identical attributes.
package header

import (
	"fmt"
	"strings"

	"github.com/roach88/embedder/internal/ir"
)

// ParseError reports a malformed header.
type ParseError struct {
	Offset  int    // byte offset into the header
	Message string // human-readable description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("header offset %d: %s", e.Offset, e.Message)
}

// Parse tokenizes raw into clauses, preserving written order.
// An empty or whitespace-only header yields an empty directive.
func Parse(raw string) (ir.Directive, error) {
	segments, err := split(raw, ',')
	if err != nil {
		return nil, err
	}

	var directive ir.Directive
	for _, seg := range segments {
		clauses, err := parseClause(seg)
		if err != nil {
			return nil, err
		}
		directive = append(directive, clauses...)
	}
	return directive, nil
}

// segment is a slice of the header with its starting offset.
type segment struct {
	text   string
	offset int
}

// parseClause splits one clause into patterns and shared attributes.
func parseClause(seg segment) ([]ir.Clause, error) {
	if strings.TrimSpace(seg.text) == "" {
		return nil, nil
	}

	parts, err := split(seg.text, ';')
	if err != nil {
		return nil, err
	}

	var patterns []string
	var attrs []ir.Attribute
	for _, part := range parts {
		text := strings.TrimSpace(part.text)
		offset := seg.offset + part.offset
		if text == "" {
			continue
		}

		name, value, isAttr := cutAttribute(text)
		if !isAttr {
			if len(attrs) > 0 {
				return nil, &ParseError{Offset: offset, Message: fmt.Sprintf("pattern %q follows attributes", text)}
			}
			patterns = append(patterns, unquote(text))
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &ParseError{Offset: offset, Message: "attribute without name"}
		}
		attrs = append(attrs, ir.Attribute{Key: name, Value: unquote(strings.TrimSpace(value))})
	}

	if len(patterns) == 0 {
		if len(attrs) == 0 {
			return nil, nil
		}
		return nil, &ParseError{Offset: seg.offset, Message: "clause has attributes but no pattern"}
	}

	clauses := make([]ir.Clause, 0, len(patterns))
	for _, p := range patterns {
		clause := ir.Clause{Pattern: p}
		if len(attrs) > 0 {
			clause.Attributes = append([]ir.Attribute(nil), attrs...)
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// cutAttribute splits "name=value" or "name:=value" at the first unquoted
// separator.
func cutAttribute(text string) (name, value string, ok bool) {
	var quote rune
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '=':
			name = text[:i]
			name = strings.TrimSuffix(name, ":")
			return name, text[i+1:], true
		}
	}
	return "", "", false
}

// split cuts s at every unquoted sep.
func split(s string, sep rune) ([]segment, error) {
	var out []segment
	var quote rune
	quoteAt := 0
	start := 0
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
			quoteAt = i
		case r == sep:
			out = append(out, segment{text: s[start:i], offset: start})
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, &ParseError{Offset: quoteAt, Message: "unterminated quote"}
	}
	out = append(out, segment{text: s[start:], offset: start})
	return out, nil
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
