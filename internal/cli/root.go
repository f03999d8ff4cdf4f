package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/logging"
)

var (
	cfgFile string
	dataDir string
	cfg     *config.Config
	log     logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "studytrack",
	Short: "StudyTrack - a personal study session tracker",
	Long: `StudyTrack logs study sessions (subject, category, minutes) per user
and reports aggregated study time. It starts an interactive shell;
type 'help' inside it for the available commands.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := NewApp(cfg, log)
		app.Run(cmd.Context())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	log = logging.NewDefault(cfg.LogLevel)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the credential and session files")
}
