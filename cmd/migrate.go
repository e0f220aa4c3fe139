package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/database"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/pkg/config"
)

// migratedModels lists every table this service owns, in creation order
var migratedModels = []interface{}{
	&models.Model{},
	&models.Gesture{},
	&models.Prediction{},
}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the model serving API.

Available subcommands:
  up      - Create or update the models, gestures, and predictions tables
  down    - Drop the service's tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the schema",
	Long: `Run GORM auto-migration for the models, gestures, and predictions
tables, creating anything missing and adding new columns and indexes.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the tables
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the service's tables",
	Long: `Drop the models, gestures, and predictions tables.

All stored rows are lost. A confirmation prompt is shown unless --dry-run
is set.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// openDatabase loads config and connects using the configured driver
func openDatabase() (*database.DB, error) {
	if err := loadConfig(); err != nil {
		return nil, err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	return database.Initialize(cfg.Database)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, m := range migratedModels {
			fmt.Printf("Would migrate %T\n", m)
		}
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(migratedModels...); err != nil {
		return err
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		for _, m := range migratedModels {
			fmt.Printf("Would drop table for %T\n", m)
		}
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will drop the models, gestures, and predictions tables. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	// Drop in reverse creation order
	for i := len(migratedModels) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(migratedModels[i]); err != nil {
			return fmt.Errorf("dropping table for %T: %w", migratedModels[i], err)
		}
		fmt.Printf("Dropped table for %T\n", migratedModels[i])
	}

	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	fmt.Println(strings.Repeat("=", 50))

	for _, m := range migratedModels {
		state := "missing"
		if db.Migrator().HasTable(m) {
			state = "present"
		}
		fmt.Fprintf(os.Stdout, "  %-30T %s\n", m, state)
	}

	return nil
}
