package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tcat/internal/db"
	"tcat/internal/ui"
)

var (
	listModuleFlag string
	listSuiteFlag  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List test cases in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), listModuleFlag, listSuiteFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&listModuleFlag, "module", "", "Filter by module name")
	listCmd.Flags().StringVar(&listSuiteFlag, "suite", "", "Filter by suite tag")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	caseID string
	module string
	suite  string
	title  string
}

func RunList(w io.Writer, moduleFilter, suiteFilter string) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `tcat init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT t.case_id, m.name, t.suite_tag, t.title
		FROM test_cases t
		JOIN modules m ON t.module_id = m.id
		ORDER BY m.name, t.id
	`)
	if err != nil {
		return fmt.Errorf("querying test cases: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		if err := rows.Scan(&r.caseID, &r.module, &r.suite, &r.title); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}

		if moduleFilter != "" && r.module != moduleFilter {
			continue
		}
		if suiteFilter != "" && r.suite != suiteFilter {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, modWidth, suiteWidth := 0, 0, 0
	for _, r := range results {
		if len(r.caseID) > idWidth {
			idWidth = len(r.caseID)
		}
		if len(r.module) > modWidth {
			modWidth = len(r.module)
		}
		if len(r.suite) > suiteWidth {
			suiteWidth = len(r.suite)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.caseID, r.module, r.suite, r.title, idWidth, modWidth, suiteWidth)
	}

	return nil
}
