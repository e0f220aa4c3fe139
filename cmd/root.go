package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "model-serving",
	Short: "Model serving microservice",
	Long: `Model Serving Microservice - storage API for a gesture recognition pipeline

This service exposes CRUD endpoints over three relational tables: registered
model metadata, captured hand-landmark frames, and batch prediction requests.
No ML inference runs in-process; inference workers read and write rows through
this API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes the configuration for commands that need it
func loadConfig() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	return nil
}
