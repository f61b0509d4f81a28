package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docxkit/docxkit/internal/config"
	"github.com/docxkit/docxkit/internal/logger"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	debugMode bool
)

// NewRootCommand builds the docxkit command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docxkit",
		Short: "docxkit inspects and edits Word documents",
		Long: `docxkit is a command line tool for inspecting and editing .docx files:
dump the document structure, replace placeholder text, append paragraphs
and table rows, and insert pictures, without opening Word.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.docxkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newReplaceCommand())
	rootCmd.AddCommand(newParagraphCommand())
	rootCmd.AddCommand(newTableCommand())
	rootCmd.AddCommand(newPictureCommand())

	return rootCmd
}

// setup loads the configuration and builds the logger shared by every
// subcommand.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger(debugMode || cfg.Debug)
	return cfg, log, nil
}
