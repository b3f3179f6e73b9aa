package gherkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: Successful login
    Given a registered user
    When they log in
    Then they see the dashboard
`)
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "Login", doc.Name)
	require.Len(t, doc.Scenarios, 1)

	block := doc.Scenarios[0]
	assert.Equal(t, KindScenario, block.Kind)
	assert.Equal(t, "Successful login", block.Name)
	assert.Nil(t, block.Examples)
	require.Len(t, block.Steps, 3)
	assert.Equal(t, Step{Keyword: Given, Text: "a registered user"}, block.Steps[0])
	assert.Equal(t, Step{Keyword: When, Text: "they log in"}, block.Steps[1])
	assert.Equal(t, Step{Keyword: Then, Text: "they see the dashboard"}, block.Steps[2])
}

func TestParse_MultipleScenariosKeepOrder(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: First
    Given a

  Scenario: Second
    Given b
`)
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 2)
	assert.Equal(t, "First", doc.Scenarios[0].Name)
	assert.Equal(t, "Second", doc.Scenarios[1].Name)
}

func TestParse_ScenarioOutlineWithExamples(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Login with different roles
    Given a user named <username>
    When they log in as <role>
    Then they see the <role> dashboard

    Examples:
      | username | role   |
      | alice    | admin  |
      | bob      | viewer |
`)
	doc, err := Parse("roles.feature", content)
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 1)

	block := doc.Scenarios[0]
	assert.Equal(t, KindOutline, block.Kind)
	require.NotNil(t, block.Examples)
	assert.Equal(t, []string{"username", "role"}, block.Examples.Columns)
	assert.Equal(t, [][]string{{"alice", "admin"}, {"bob", "viewer"}}, block.Examples.Rows)

	// Placeholders stay verbatim in step text.
	assert.Equal(t, "a user named <username>", block.Steps[0].Text)
}

func TestParse_ExamplesHeaderOnly(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
      | role |
`)
	doc, err := Parse("roles.feature", content)
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 1)

	table := doc.Scenarios[0].Examples
	require.NotNil(t, table)
	assert.Equal(t, []string{"role"}, table.Columns)
	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
}

func TestParse_AndButKeptLiteral(t *testing.T) {
	content := []byte(`Feature: Cart
  Scenario: Add items
    Given an empty cart
    And a product catalog
    When an item is added
    But the cart is full
    Then an error is shown
`)
	doc, err := Parse("cart.feature", content)
	require.NoError(t, err)
	steps := doc.Scenarios[0].Steps
	require.Len(t, steps, 5)
	assert.Equal(t, And, steps[1].Keyword)
	assert.Equal(t, But, steps[3].Keyword)
}

func TestParse_CaseInsensitiveKeywords(t *testing.T) {
	content := []byte(`feature: Login
  SCENARIO: Mixed case
    GIVEN a user
    when they act
    Then it works
`)
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "Login", doc.Name)
	require.Len(t, doc.Scenarios, 1)

	steps := doc.Scenarios[0].Steps
	require.Len(t, steps, 3)
	// Keywords are stored canonically regardless of source casing.
	assert.Equal(t, Given, steps[0].Keyword)
	assert.Equal(t, When, steps[1].Keyword)
}

func TestParse_CommentsAndBlankLinesSkipped(t *testing.T) {
	content := []byte(`# suite header
Feature: Login

  # scenario note
  Scenario: User logs in

    Given a user
`)
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "Login", doc.Name)
	require.Len(t, doc.Scenarios, 1)
	assert.Len(t, doc.Scenarios[0].Steps, 1)
}

func TestParse_DescriptionLinesIgnored(t *testing.T) {
	content := []byte(`Feature: Login
  As a user I want to log in
  so that I can see my data

  Scenario: User logs in
    Given a user
`)
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	require.Len(t, doc.Scenarios, 1)
	assert.Len(t, doc.Scenarios[0].Steps, 1)
}

func TestParse_Deterministic(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
      | role  |
      | admin |
`)
	first, err := Parse("roles.feature", content)
	require.NoError(t, err)
	second, err := Parse("roles.feature", content)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_NoFeatureHeader(t *testing.T) {
	content := []byte(`Scenario: User logs in
    Given a user
`)
	_, err := Parse("login.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestParse_EmptyFeatureName(t *testing.T) {
	content := []byte("Feature:\n  Scenario: X\n    Given a\n")
	_, err := Parse("x.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "empty")
}

func TestParse_StepBeforeScenarioHeader(t *testing.T) {
	content := []byte(`Feature: Login
  Given a user
  Scenario: User logs in
`)
	_, err := Parse("login.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Message, "step before")
}

func TestParse_RowCellCountMismatch(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
      | username | role  |
      | alice    | admin | extra |
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 7, perr.Line)
	assert.Contains(t, perr.Message, "3 cells")
}

func TestParse_DuplicateExamplesColumns(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
      | role | role |
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "duplicate")
}

func TestParse_OutlineWithoutExamples(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Message, "no Examples")
}

func TestParse_ExamplesUnderPlainScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: Roles
    Given a role

    Examples:
      | role |
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
	assert.Contains(t, perr.Message, "plain Scenario")
}

func TestParse_MultipleExamplesBlocks(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
      | role  |
      | admin |

    Examples:
      | role   |
      | viewer |
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 9, perr.Line)
	assert.Contains(t, perr.Message, "multiple Examples")
}

func TestParse_TableRowOutsideExamples(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: Roles
    Given a role
    | stray | row |
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Line)
}

func TestParse_ExamplesBlockWithoutHeaderRow(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: Roles
    Given a <role>

    Examples:
`)
	_, err := Parse("roles.feature", content)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Line)
	assert.Contains(t, perr.Message, "no header row")
}

func TestParse_EmptyScenariosAllowedAtParseLevel(t *testing.T) {
	content := []byte("Feature: Login\n")
	doc, err := Parse("login.feature", content)
	require.NoError(t, err)
	assert.Equal(t, "Login", doc.Name)
	assert.Empty(t, doc.Scenarios)
}

func TestClassifyLine_Kinds(t *testing.T) {
	cases := []struct {
		raw  string
		kind lineKind
	}{
		{"", lineBlank},
		{"   ", lineBlank},
		{"# note", lineComment},
		{"Feature: X", lineFeature},
		{"  Scenario: Y", lineScenario},
		{"  Scenario Outline: Z", lineOutline},
		{"  Examples:", lineExamples},
		{"    Given a user", lineStep},
		{"    | a | b |", lineTableRow},
		{"  free-form description", lineText},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, classifyLine(c.raw).kind, "raw=%q", c.raw)
	}
}

func TestSplitTableRow(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitTableRow("| a | b |"))
	assert.Equal(t, []string{"a", ""}, splitTableRow("|a||"))
	assert.Equal(t, []string{"spaced out"}, splitTableRow("|  spaced out  |"))
}
