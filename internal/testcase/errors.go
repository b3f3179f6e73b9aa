package testcase

// ValidationError reports an upload that was never eligible: wrong file
// extension, no module selected, or a feature with no scenarios. Distinct
// from gherkin.ParseError, which means the content itself was malformed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// MappingError reports an incomplete context at mapping time. Map checks
// its own preconditions because it may be called directly, not only through
// Process.
type MappingError struct {
	Msg string
}

func (e *MappingError) Error() string { return e.Msg }
