package testcase

import (
	"fmt"
	"path/filepath"
	"strings"

	"tcat/internal/gherkin"
)

// Process runs the conversion pipeline for one uploaded feature file:
// validate preconditions, parse, then map every scenario in document order.
// Mapping is all-or-nothing: if any block fails, no records are returned.
//
// A fresh Sequence is created when ctx.Seq is nil, so a single upload always
// numbers from 1; callers batching several files may pass a shared Sequence
// to number the whole batch consecutively.
func Process(filename string, content []byte, ctx Context) ([]Record, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".feature") {
		return nil, &ValidationError{Msg: fmt.Sprintf("%s: only .feature files can be uploaded", filename)}
	}
	if ctx.ModuleID == "" {
		return nil, &ValidationError{Msg: "a module must be selected before uploading"}
	}

	doc, err := gherkin.Parse(filename, content)
	if err != nil {
		return nil, err
	}
	if len(doc.Scenarios) == 0 {
		return nil, &ValidationError{Msg: "feature must contain at least one scenario"}
	}

	if ctx.Seq == nil {
		ctx.Seq = &Sequence{}
	}

	records := make([]Record, 0, len(doc.Scenarios))
	for _, block := range doc.Scenarios {
		rec, err := Map(doc.Name, block, ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
