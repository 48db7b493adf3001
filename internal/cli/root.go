// Package cli implements the nlplab command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cognicore/nlplab/internal/logging"
	"github.com/cognicore/nlplab/internal/settings"
	"github.com/cognicore/nlplab/pkg/nlplab"
	"github.com/cognicore/nlplab/pkg/nlplab/config"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App carries the initialized dependencies through the command tree.
type App struct {
	Settings *settings.Settings
	Logger   *zap.Logger
	Engine   *nlplab.Engine
}

// NewRootCommand creates the root command with its global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	v := settings.New()
	app := &App{}
	var configPath string

	cmd := &cobra.Command{
		Use:     "nlplab",
		Short:   "Explore the phases of natural language processing",
		Long:    "nlplab runs small rule-based demonstrations of morphological, lexical,\nsyntactic, semantic, pragmatic and discourse analysis.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(v, configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "settings file (YAML)")
	pf.String(settings.KeyTables, "", "YAML table overrides")
	pf.String(settings.KeyStems, "", "lexicon group file merged into the stem table")
	pf.String(settings.KeyLemmas, "", "lexicon group file merged into the lemma table")
	pf.String(settings.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.String(settings.KeyLogFormat, "console", "log format (console, json)")
	pf.Bool(settings.KeyDelay, false, "simulate the processing delay of each operation")
	bindFlags(v, pf.Lookup, settings.KeyTables, settings.KeyStems, settings.KeyLemmas,
		settings.KeyLogLevel, settings.KeyLogFormat, settings.KeyDelay)

	cmd.AddCommand(
		newOpsCmd(),
		newAnalyzeCmd(app),
		newReplCmd(app),
		newBatchCmd(app),
		newServeCmd(app, v),
	)
	return cmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *App) init(v *viper.Viper, configPath string) error {
	s, err := settings.Load(v, configPath)
	if err != nil {
		return err
	}
	a.Settings = s

	logger, err := logging.New(s.LogLevel, s.LogFormat)
	if err != nil {
		return err
	}
	a.Logger = logger

	loader := config.Loader{
		TablesPath: s.TablesPath,
		StemsPath:  s.StemsPath,
		LemmasPath: s.LemmasPath,
	}
	comp, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	if s.TablesPath != "" {
		logger.Debug("loaded table overrides", zap.String("path", s.TablesPath))
	}

	a.Engine = nlplab.New(nlplab.Options{Components: comp, SimulateDelay: s.Delay})
	return nil
}
