package gherkin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesTable_JSONShape(t *testing.T) {
	table := &ExamplesTable{
		Columns: []string{"username", "role"},
		Rows:    [][]string{{"alice", "admin"}, {"bob", "viewer"}},
	}

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["username","role"],"rows":[["alice","admin"],["bob","viewer"]]}`, string(out))
}

func TestExamplesTable_EmptyRowsMarshalAsEmptyArray(t *testing.T) {
	table := &ExamplesTable{
		Columns: []string{"role"},
		Rows:    make([][]string, 0),
	}

	out, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns":["role"],"rows":[]}`, string(out))
}

func TestExamplesTable_CellsStayStrings(t *testing.T) {
	content := []byte(`Feature: Numbers
  Scenario Outline: Counting
    Given <count> items

    Examples:
      | count |
      | 007   |
      | 12.5  |
`)
	doc, err := Parse("numbers.feature", content)
	require.NoError(t, err)

	table := doc.Scenarios[0].Examples
	require.NotNil(t, table)
	// Numeric-looking cells are never coerced.
	assert.Equal(t, [][]string{{"007"}, {"12.5"}}, table.Rows)
}

func TestExamplesTable_RenderRoundTrip(t *testing.T) {
	table := &ExamplesTable{
		Columns: []string{"username", "role"},
		Rows:    [][]string{{"alice", "admin"}, {"bob", "viewer"}},
	}

	content := "Feature: Login\n" +
		"  Scenario Outline: Roles\n" +
		"    Given a user named <username>\n" +
		"\n" +
		"    Examples:\n" +
		table.Render()

	doc, err := Parse("login.feature", []byte(content))
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 1)
	assert.Equal(t, table, doc.Scenarios[0].Examples)
}

func TestExamplesTable_RenderHeaderOnlyRoundTrip(t *testing.T) {
	table := &ExamplesTable{
		Columns: []string{"role"},
		Rows:    make([][]string, 0),
	}

	content := "Feature: Login\n" +
		"  Scenario Outline: Roles\n" +
		"    Given a <role>\n" +
		"\n" +
		"    Examples:\n" +
		table.Render()

	doc, err := Parse("login.feature", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, table, doc.Scenarios[0].Examples)
}
