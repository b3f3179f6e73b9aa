package gherkin

import "fmt"

// Keyword is a step keyword. And/But are stored as written, never
// rewritten to the preceding primary keyword.
type Keyword string

const (
	Given Keyword = "Given"
	When  Keyword = "When"
	Then  Keyword = "Then"
	And   Keyword = "And"
	But   Keyword = "But"
)

// Step is one line of a scenario. Text keeps <placeholder> tokens verbatim.
type Step struct {
	Keyword Keyword
	Text    string
}

// ScenarioKind distinguishes a plain Scenario from a Scenario Outline.
// The kind is fixed by the header keyword at parse time.
type ScenarioKind int

const (
	KindScenario ScenarioKind = iota
	KindOutline
)

func (k ScenarioKind) String() string {
	switch k {
	case KindScenario:
		return "Scenario"
	case KindOutline:
		return "Scenario Outline"
	default:
		return "unknown"
	}
}

// ScenarioBlock is one Scenario or Scenario Outline. Examples is nil
// exactly when Kind is KindScenario.
type ScenarioBlock struct {
	Kind     ScenarioKind
	Name     string
	Steps    []Step
	Examples *ExamplesTable
	Line     int // 1-based line number of the header
}

// FeatureDocument is the parsed form of one feature file. Scenarios keep
// source order.
type FeatureDocument struct {
	Name      string
	Scenarios []ScenarioBlock
}

// ParseError reports malformed Gherkin with the offending line number.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
