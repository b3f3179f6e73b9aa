package testcase

import (
	"fmt"
	"strings"

	"tcat/internal/gherkin"
)

// TestType says whether a test case is executed by hand or by a runner.
type TestType string

const (
	Manual    TestType = "Manual"
	Automated TestType = "Automated"
)

// ParseTestType parses a case-insensitive test type name.
func ParseTestType(s string) (TestType, error) {
	switch strings.ToLower(s) {
	case "manual":
		return Manual, nil
	case "automated":
		return Automated, nil
	}
	return "", fmt.Errorf("invalid test type %q (want Manual or Automated)", s)
}

// SuiteTag names the suite a test case belongs to. It also appears in the
// generated case ID, e.g. TC_UI_1.
type SuiteTag string

const (
	SuiteUI     SuiteTag = "UI"
	SuiteAPI    SuiteTag = "API"
	SuiteHybrid SuiteTag = "Hybrid"
)

// ParseSuiteTag parses a case-insensitive suite name.
func ParseSuiteTag(s string) (SuiteTag, error) {
	switch strings.ToLower(s) {
	case "ui":
		return SuiteUI, nil
	case "api":
		return SuiteAPI, nil
	case "hybrid":
		return SuiteHybrid, nil
	}
	return "", fmt.Errorf("invalid suite tag %q (want UI, API or Hybrid)", s)
}

// Record is one normalized test case produced from a scenario block. It is
// the terminal output of the conversion pipeline; persistence belongs to
// the catalog, not to this package.
type Record struct {
	ID               string                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Steps            []string               `json:"steps"`
	ScenarioExamples *gherkin.ExamplesTable `json:"scenario_examples"`
	Tags             []string               `json:"tags"`
	TestType         TestType               `json:"test_type"`
	SuiteTag         SuiteTag               `json:"suite_tag"`
	ModuleID         string                 `json:"module_id"`
	SubModule        *string                `json:"sub_module"`
}

// Context carries the upload-scoped inputs shared by every record mapped
// from one feature file.
type Context struct {
	ModuleID  string
	SubModule string
	TestType  TestType // defaults to Automated when empty
	SuiteTag  SuiteTag // defaults to SuiteUI when empty
	Tags      []string // merged with the built-in tags
	Seq       *Sequence
}
