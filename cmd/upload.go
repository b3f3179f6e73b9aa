package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"tcat/internal/db"
	"tcat/internal/testcase"
	"tcat/internal/ui"
)

var (
	uploadModuleFlag    string
	uploadSubModuleFlag string
	uploadTypeFlag      string
	uploadSuiteFlag     string
	uploadTagsFlag      []string
	uploadJSONFlag      bool
	uploadDryRunFlag    bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.feature>",
	Short: "Convert a feature file into test cases and store them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunUpload(cmd.OutOrStdout(), args[0], uploadModuleFlag, uploadSubModuleFlag,
			uploadTypeFlag, uploadSuiteFlag, uploadTagsFlag, uploadJSONFlag, uploadDryRunFlag)
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadModuleFlag, "module", "", "Module the test cases belong to (required)")
	uploadCmd.Flags().StringVar(&uploadSubModuleFlag, "sub-module", "", "Optional sub-module")
	uploadCmd.Flags().StringVar(&uploadTypeFlag, "type", "Automated", "Test type: Manual or Automated")
	uploadCmd.Flags().StringVar(&uploadSuiteFlag, "suite", "UI", "Suite tag: UI, API or Hybrid")
	uploadCmd.Flags().StringArrayVar(&uploadTagsFlag, "tag", nil, "Extra tag (repeatable)")
	uploadCmd.Flags().BoolVar(&uploadJSONFlag, "json", false, "Print the created records as JSON")
	uploadCmd.Flags().BoolVar(&uploadDryRunFlag, "dry-run", false, "Parse and map without writing to the catalog")
	uploadCmd.MarkFlagRequired("module")
	rootCmd.AddCommand(uploadCmd)
}

func RunUpload(w io.Writer, path, moduleName, subModule, typeStr, suiteStr string, extraTags []string, asJSON, dryRun bool) error {
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		return fmt.Errorf("run `tcat init` first")
	}

	testType, err := testcase.ParseTestType(typeStr)
	if err != nil {
		return err
	}
	suite, err := testcase.ParseSuiteTag(suiteStr)
	if err != nil {
		return err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	moduleID, err := lookupModule(sqlDB, moduleName)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	records, err := testcase.Process(filepath.Base(path), content, testcase.Context{
		ModuleID:  strconv.FormatInt(moduleID, 10),
		SubModule: subModule,
		TestType:  testType,
		SuiteTag:  suite,
		Tags:      extraTags,
	})
	if err != nil {
		return err
	}

	var created, updated int
	if !dryRun {
		created, updated, err = persistBatch(sqlDB, moduleID, filepath.Base(path), records, func(rec testcase.Record, isNew bool) {
			if asJSON {
				return
			}
			if isNew {
				ui.CreatedLine(w, rec.ID, rec.Title)
			} else {
				ui.UpdatedLine(w, rec.ID, rec.Title)
			}
		})
		if err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if dryRun {
		fmt.Fprintf(w, "dry run: %d test cases mapped, nothing stored\n", len(records))
		return nil
	}

	ui.UploadSummary(w, created, updated)
	return nil
}

// persistBatch writes the whole record batch in one transaction so a failed
// upload leaves no partial batch behind.
func persistBatch(sqlDB *sql.DB, moduleID int64, sourceFile string, records []testcase.Record, report func(testcase.Record, bool)) (created, updated int, err error) {
	tx, err := sqlDB.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("beginning upload transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, rec := range records {
		stepsJSON, err := json.Marshal(rec.Steps)
		if err != nil {
			return 0, 0, fmt.Errorf("encoding steps for %s: %w", rec.ID, err)
		}
		tagsJSON, err := json.Marshal(rec.Tags)
		if err != nil {
			return 0, 0, fmt.Errorf("encoding tags for %s: %w", rec.ID, err)
		}
		var examplesJSON any
		if rec.ScenarioExamples != nil {
			b, err := json.Marshal(rec.ScenarioExamples)
			if err != nil {
				return 0, 0, fmt.Errorf("encoding examples for %s: %w", rec.ID, err)
			}
			examplesJSON = string(b)
		}

		var existingID int64
		scanErr := tx.QueryRow(`SELECT id FROM test_cases WHERE module_id = ? AND case_id = ?`, moduleID, rec.ID).Scan(&existingID)
		switch {
		case scanErr == sql.ErrNoRows:
			_, err = tx.Exec(`
				INSERT INTO test_cases
					(case_id, module_id, sub_module, title, description, steps, examples, tags, test_type, suite_tag, source_file)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				rec.ID, moduleID, rec.SubModule, rec.Title, rec.Description,
				string(stepsJSON), examplesJSON, string(tagsJSON),
				string(rec.TestType), string(rec.SuiteTag), sourceFile)
			if err != nil {
				return 0, 0, fmt.Errorf("inserting %s: %w", rec.ID, err)
			}
			created++
			report(rec, true)
		case scanErr != nil:
			return 0, 0, fmt.Errorf("querying %s: %w", rec.ID, scanErr)
		default:
			_, err = tx.Exec(`
				UPDATE test_cases
				SET sub_module = ?, title = ?, description = ?, steps = ?, examples = ?, tags = ?,
					test_type = ?, suite_tag = ?, source_file = ?, updated_at = datetime('now')
				WHERE id = ?`,
				rec.SubModule, rec.Title, rec.Description,
				string(stepsJSON), examplesJSON, string(tagsJSON),
				string(rec.TestType), string(rec.SuiteTag), sourceFile, existingID)
			if err != nil {
				return 0, 0, fmt.Errorf("updating %s: %w", rec.ID, err)
			}
			updated++
			report(rec, false)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing upload: %w", err)
	}
	return created, updated, nil
}
