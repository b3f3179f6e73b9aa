package gherkin

import (
	"fmt"
	"strings"
)

// lineKind is the classification of one source line. Every line falls into
// exactly one kind; the parser switches over this instead of re-checking
// string prefixes downstream.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineFeature
	lineScenario
	lineOutline
	lineExamples
	lineStep
	lineTableRow
	lineText
)

type line struct {
	kind    lineKind
	keyword Keyword // set for lineStep
	value   string  // header name, step text, or raw table row
}

var stepKeywords = []Keyword{Given, When, Then, And, But}

// classifyLine assigns a kind to one raw source line. Keywords are matched
// case-insensitively after trimming leading whitespace.
func classifyLine(raw string) line {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return line{kind: lineBlank}
	case strings.HasPrefix(trimmed, "#"):
		return line{kind: lineComment}
	case strings.HasPrefix(trimmed, "|"):
		return line{kind: lineTableRow, value: trimmed}
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "feature:"):
		return line{kind: lineFeature, value: strings.TrimSpace(trimmed[len("feature:"):])}
	case strings.HasPrefix(lower, "scenario outline:"):
		return line{kind: lineOutline, value: strings.TrimSpace(trimmed[len("scenario outline:"):])}
	case strings.HasPrefix(lower, "scenario:"):
		return line{kind: lineScenario, value: strings.TrimSpace(trimmed[len("scenario:"):])}
	case strings.HasPrefix(lower, "examples:"):
		return line{kind: lineExamples}
	}

	for _, kw := range stepKeywords {
		prefix := strings.ToLower(string(kw))
		if lower == prefix || strings.HasPrefix(lower, prefix+" ") {
			return line{kind: lineStep, keyword: kw, value: strings.TrimSpace(trimmed[len(prefix):])}
		}
	}

	return line{kind: lineText, value: trimmed}
}

// Parse parses feature-file content into a FeatureDocument. It is a pure
// function over the text: identical content always yields an identical
// document. Errors are *ParseError values carrying the offending line.
func Parse(filename string, content []byte) (*FeatureDocument, error) {
	lines := strings.Split(string(content), "\n")

	doc := &FeatureDocument{}
	seenFeature := false

	var current *ScenarioBlock
	inExamples := false
	examplesLine := 0

	// closeBlock finishes the current block, running the outline/examples
	// cross-checks that the header keyword alone cannot guarantee.
	closeBlock := func() error {
		if current == nil {
			return nil
		}
		if current.Kind == KindOutline && current.Examples == nil {
			return &ParseError{Line: current.Line, Message: "Scenario Outline has no Examples block"}
		}
		if current.Examples != nil && current.Examples.Columns == nil {
			return &ParseError{Line: examplesLine, Message: "Examples block has no header row"}
		}
		doc.Scenarios = append(doc.Scenarios, *current)
		current = nil
		inExamples = false
		return nil
	}

	for i, raw := range lines {
		ln := i + 1
		l := classifyLine(raw)

		switch l.kind {
		case lineBlank, lineComment:
			continue

		case lineFeature:
			if seenFeature {
				return nil, &ParseError{Line: ln, Message: "duplicate Feature header"}
			}
			if l.value == "" {
				return nil, &ParseError{Line: ln, Message: "Feature name is empty"}
			}
			doc.Name = l.value
			seenFeature = true

		case lineScenario, lineOutline:
			if !seenFeature {
				return nil, &ParseError{Line: ln, Message: "scenario before Feature header"}
			}
			if err := closeBlock(); err != nil {
				return nil, err
			}
			kind := KindScenario
			if l.kind == lineOutline {
				kind = KindOutline
			}
			current = &ScenarioBlock{Kind: kind, Name: l.value, Line: ln}

		case lineStep:
			if current == nil {
				return nil, &ParseError{Line: ln, Message: "step before any Scenario header"}
			}
			inExamples = false
			current.Steps = append(current.Steps, Step{Keyword: l.keyword, Text: l.value})

		case lineExamples:
			if current == nil {
				return nil, &ParseError{Line: ln, Message: "Examples block outside a scenario"}
			}
			if current.Kind == KindScenario {
				return nil, &ParseError{Line: ln, Message: "Examples block under a plain Scenario"}
			}
			if current.Examples != nil {
				return nil, &ParseError{Line: ln, Message: "multiple Examples blocks in one Scenario Outline"}
			}
			current.Examples = &ExamplesTable{Rows: make([][]string, 0)}
			inExamples = true
			examplesLine = ln

		case lineTableRow:
			if current == nil || !inExamples {
				return nil, &ParseError{Line: ln, Message: "table row outside an Examples block"}
			}
			cells := splitTableRow(l.value)
			table := current.Examples
			if table.Columns == nil {
				seen := make(map[string]struct{}, len(cells))
				for _, c := range cells {
					if _, dup := seen[c]; dup {
						return nil, &ParseError{Line: ln, Message: fmt.Sprintf("duplicate Examples column %q", c)}
					}
					seen[c] = struct{}{}
				}
				table.Columns = cells
			} else {
				if len(cells) != len(table.Columns) {
					return nil, &ParseError{
						Line:    ln,
						Message: fmt.Sprintf("Examples row has %d cells, header has %d columns", len(cells), len(table.Columns)),
					}
				}
				table.Rows = append(table.Rows, cells)
			}

		case lineText:
			// Description line, ignored.
			continue
		}
	}

	if err := closeBlock(); err != nil {
		return nil, err
	}
	if !seenFeature {
		return nil, &ParseError{Line: 1, Message: "no Feature header in " + filename}
	}

	return doc, nil
}

// splitTableRow splits a pipe-delimited row into trimmed cells. The leading
// and trailing pipes are dropped first, so `| a | b |` yields two cells.
func splitTableRow(trimmed string) []string {
	s := strings.TrimPrefix(trimmed, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
