package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tcat/internal/db"
	"tcat/internal/gherkin"
	"tcat/internal/ui"
)

var showModuleFlag string

var showCmd = &cobra.Command{
	Use:   "show <case-id>",
	Short: "Show a test case by its generated ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0], showModuleFlag)
	},
}

func init() {
	showCmd.Flags().StringVar(&showModuleFlag, "module", "", "Module to look in (required when the ID exists in several modules)")
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, caseID, moduleName string) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `tcat init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	query := `
		SELECT m.name, t.sub_module, t.title, t.description, t.steps, t.examples, t.tags,
			t.test_type, t.suite_tag, t.source_file
		FROM test_cases t
		JOIN modules m ON t.module_id = m.id
		WHERE t.case_id = ?`
	args := []any{caseID}
	if moduleName != "" {
		query += ` AND m.name = ?`
		args = append(args, moduleName)
	}

	rows, err := sqlDB.Query(query, args...)
	if err != nil {
		return fmt.Errorf("querying test case %s: %w", caseID, err)
	}
	defer rows.Close()

	type caseRow struct {
		module, title, description     string
		subModule, examples            sql.NullString
		stepsJSON, tagsJSON            string
		testType, suiteTag, sourceFile string
	}

	var matches []caseRow
	for rows.Next() {
		var r caseRow
		if err := rows.Scan(&r.module, &r.subModule, &r.title, &r.description, &r.stepsJSON,
			&r.examples, &r.tagsJSON, &r.testType, &r.suiteTag, &r.sourceFile); err != nil {
			return fmt.Errorf("scanning test case: %w", err)
		}
		matches = append(matches, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating test cases: %w", err)
	}

	if len(matches) == 0 {
		return fmt.Errorf("test case %s not found", caseID)
	}
	if len(matches) > 1 {
		return fmt.Errorf("test case %s exists in several modules, pass --module", caseID)
	}
	r := matches[0]

	var steps []string
	if err := json.Unmarshal([]byte(r.stepsJSON), &steps); err != nil {
		return fmt.Errorf("decoding steps: %w", err)
	}
	var tags []string
	if err := json.Unmarshal([]byte(r.tagsJSON), &tags); err != nil {
		return fmt.Errorf("decoding tags: %w", err)
	}

	ui.ShowHeader(w, caseID, r.title)
	ui.Field(w, "module", r.module)
	if r.subModule.Valid && r.subModule.String != "" {
		ui.Field(w, "sub-module", r.subModule.String)
	}
	ui.Field(w, "suite", r.suiteTag)
	ui.Field(w, "type", r.testType)
	ui.Field(w, "tags", strings.Join(tags, ", "))
	ui.Field(w, "source", r.sourceFile)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+r.description)

	fmt.Fprintln(w)
	ui.Gherkin(w, strings.Join(steps, "\n"))

	if r.examples.Valid {
		var table gherkin.ExamplesTable
		if err := json.Unmarshal([]byte(r.examples.String), &table); err != nil {
			return fmt.Errorf("decoding examples: %w", err)
		}
		fmt.Fprintln(w)
		ui.Gherkin(w, "Examples:")
		ui.Gherkin(w, table.Render())
	}

	return nil
}
