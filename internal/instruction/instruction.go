// Package instruction compiles the wildcard patterns used in
// Embed-Dependency clauses.
//
// Pattern syntax:
//   - "!" prefix negates the pattern
//   - "*" matches any run of characters, "?" at most one character
//   - "." is literal
//   - everything else is regular expression syntax, so "a|b" is alternation
//   - a trailing ".*" also matches the bare prefix ("org.acme.*" matches "org.acme")
//
// Patterns always match the whole value.
package instruction

import (
	"fmt"
	"regexp"
	"strings"
)

// NegationMarker prefixes a negated pattern.
const NegationMarker = "!"

// Instruction is a compiled pattern with its negation flag.
type Instruction struct {
	expr    string
	negated bool
	re      *regexp.Regexp
}

// Compile parses expr into an Instruction.
// Returns an error when the translated expression is not a valid regular
// expression (e.g. an unbalanced "(").
func Compile(expr string) (*Instruction, error) {
	body := expr
	negated := strings.HasPrefix(body, NegationMarker)
	if negated {
		body = body[len(NegationMarker):]
	}

	pattern := translate(body)
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}

	return &Instruction{expr: expr, negated: negated, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Instruction {
	inst, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return inst
}

// translate rewrites wildcard syntax into a regular expression.
func translate(body string) string {
	var sb strings.Builder
	for _, r := range body {
		switch r {
		case '.':
			sb.WriteString(`\.`)
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.?`)
		default:
			sb.WriteRune(r)
		}
	}

	pattern := sb.String()
	if prefix, ok := strings.CutSuffix(pattern, `\..*`); ok {
		pattern = pattern + "|" + prefix
	}
	return pattern
}

// Matches reports whether value matches the pattern, ignoring negation.
func (i *Instruction) Matches(value string) bool {
	return i.re.MatchString(value)
}

// Accepts reports whether value passes the instruction: the match result
// XOR the negation flag.
func (i *Instruction) Accepts(value string) bool {
	return i.Matches(value) != i.negated
}

// Negated reports whether the expression carried the negation marker.
func (i *Instruction) Negated() bool {
	return i.negated
}

// String returns the original expression.
func (i *Instruction) String() string {
	return i.expr
}
