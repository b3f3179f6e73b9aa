package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tcat/internal/db"
	"tcat/internal/ui"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Manage catalog modules",
}

var moduleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunModuleAdd(cmd.OutOrStdout(), args[0])
	},
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and their test case counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunModuleList(cmd.OutOrStdout())
	},
}

func init() {
	moduleCmd.AddCommand(moduleAddCmd)
	moduleCmd.AddCommand(moduleListCmd)
	rootCmd.AddCommand(moduleCmd)
}

func RunModuleAdd(w io.Writer, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("module name must not be empty")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `tcat init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var existingID int64
	err = sqlDB.QueryRow(`SELECT id FROM modules WHERE name = ?`, name).Scan(&existingID)
	if err == nil {
		return fmt.Errorf("module %q already exists", name)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("querying modules: %w", err)
	}

	res, err := sqlDB.Exec(`INSERT INTO modules (name) VALUES (?)`, name)
	if err != nil {
		return fmt.Errorf("inserting module: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading module id: %w", err)
	}

	fmt.Fprintf(w, "module %q created (id %d)\n", name, id)
	return nil
}

func RunModuleList(w io.Writer) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `tcat init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT m.id, m.name, COUNT(t.id)
		FROM modules m
		LEFT JOIN test_cases t ON t.module_id = m.id
		GROUP BY m.id
		ORDER BY m.name
	`)
	if err != nil {
		return fmt.Errorf("querying modules: %w", err)
	}
	defer rows.Close()

	var found bool
	for rows.Next() {
		var id int64
		var name string
		var cases int
		if err := rows.Scan(&id, &name, &cases); err != nil {
			return fmt.Errorf("scanning module row: %w", err)
		}
		ui.ModuleRow(w, id, name, cases)
		found = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating modules: %w", err)
	}

	if !found {
		fmt.Fprintln(w, "no modules (run `tcat module add <name>`)")
	}
	return nil
}

// lookupModule resolves a module name to its row id.
func lookupModule(sqlDB *sql.DB, name string) (int64, error) {
	var id int64
	err := sqlDB.QueryRow(`SELECT id FROM modules WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("module %q not found (run `tcat module add %s` first)", name, name)
	}
	if err != nil {
		return 0, fmt.Errorf("querying module %q: %w", name, err)
	}
	return id, nil
}
