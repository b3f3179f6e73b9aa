package testcase

import (
	"fmt"
	"sort"

	"tcat/internal/gherkin"
)

// Tags present on every mapped record.
const (
	TagBDD     = "bdd"
	TagGherkin = "gherkin"
)

// Map converts one scenario block into a catalog record. Callers mapping
// more than one block must share a Sequence via ctx.Seq so the batch is
// numbered consecutively; with a nil Seq each call numbers from 1.
func Map(featureName string, block gherkin.ScenarioBlock, ctx Context) (Record, error) {
	if ctx.ModuleID == "" {
		return Record{}, &MappingError{Msg: "cannot map test case: no module selected"}
	}

	testType := ctx.TestType
	if testType == "" {
		testType = Automated
	}
	suite := ctx.SuiteTag
	if suite == "" {
		suite = SuiteUI
	}
	seq := ctx.Seq
	if seq == nil {
		seq = &Sequence{}
	}

	steps := make([]string, 0, len(block.Steps))
	for _, s := range block.Steps {
		steps = append(steps, fmt.Sprintf("%s %s", s.Keyword, s.Text))
	}

	rec := Record{
		ID:          fmt.Sprintf("TC_%s_%d", suite, seq.Next()),
		Title:       block.Name,
		Description: fmt.Sprintf("%s: %s", featureName, block.Name),
		Steps:       steps,
		Tags:        mergeTags(ctx.Tags),
		TestType:    testType,
		SuiteTag:    suite,
		ModuleID:    ctx.ModuleID,
	}
	if ctx.SubModule != "" {
		sub := ctx.SubModule
		rec.SubModule = &sub
	}
	if block.Kind == gherkin.KindOutline {
		rec.ScenarioExamples = block.Examples
	}
	return rec, nil
}

// mergeTags unions the built-in tags with caller-supplied ones and sorts
// the result, giving the tag set one canonical serialization.
func mergeTags(extra []string) []string {
	set := map[string]struct{}{TagBDD: {}, TagGherkin: {}}
	for _, t := range extra {
		set[t] = struct{}{}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
