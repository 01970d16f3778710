package recipe

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// headerRe matches a recipe header: a bare identifier, optional trailing
// colon, nothing else on the line.
var headerRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*:?$`)

// Parse builds a Set from recipe-definition text. It is a pure function of
// src; failures are *DuplicateNameError or *MalformedBlockError.
func Parse(src []byte) (*Set, error) {
	set := &Set{byName: make(map[string]*Recipe)}

	var (
		cur    *Recipe
		indent string
		doc    string
		hasDoc bool
	)

	// closeBlock validates the recipe whose body just ended.
	closeBlock := func() error {
		if cur != nil && len(cur.Commands) == 0 {
			return &MalformedBlockError{
				Recipe: cur.Name,
				Line:   cur.Line,
				Reason: "recipe has no command lines",
			}
		}
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(raw)

		switch {
		case trimmed == "":
			// Blank lines separate a summary comment from a later header
			// but don't end an open body.
			doc, hasDoc = "", false

		case raw != trimmed && (raw[0] == ' ' || raw[0] == '\t'):
			// Indented: a command line of the open recipe.
			if cur == nil {
				return nil, &MalformedBlockError{
					Line:   line,
					Reason: fmt.Sprintf("command line %q outside of a recipe", trimmed),
				}
			}
			lead := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
			if indent == "" {
				indent = lead
			}
			if lead != indent {
				return nil, &MalformedBlockError{
					Recipe: cur.Name,
					Line:   line,
					Reason: "inconsistent indentation",
				}
			}
			cur.Commands = append(cur.Commands, strings.TrimRight(raw[len(indent):], " \t"))
			doc, hasDoc = "", false

		case strings.HasPrefix(trimmed, "#"):
			// Candidate summary for the next header.
			doc = strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
			hasDoc = true

		default:
			if !headerRe.MatchString(trimmed) {
				return nil, &MalformedBlockError{
					Line:   line,
					Reason: fmt.Sprintf("expected a recipe header, got %q", trimmed),
				}
			}
			if err := closeBlock(); err != nil {
				return nil, err
			}

			name := strings.TrimSuffix(trimmed, ":")
			if prev, ok := set.byName[name]; ok {
				return nil, &DuplicateNameError{
					Name:      name,
					FirstLine: prev.Line,
					Line:      line,
				}
			}

			cur = &Recipe{Name: name, Line: line}
			if hasDoc {
				cur.Summary = doc
			}
			indent = ""
			doc, hasDoc = "", false

			set.byName[name] = cur
			set.recipes = append(set.recipes, cur)
		}
	}
	if err := sc.Err(); err != nil {
		// bufio.Scanner only fails here on pathological line lengths.
		return nil, err
	}
	if err := closeBlock(); err != nil {
		return nil, err
	}

	return set, nil
}
