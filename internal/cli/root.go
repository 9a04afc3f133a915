package cli

import (
	"context"
	"fmt"
	"strings"

	"trace-analytics/internal/shared/configs"
	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/stores"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	outDir     string
}

// NewRootCommand builds the tracestats command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "tracestats",
		Short: "Aggregate link-level simulator traces into plot-ready series",
		Long: `tracestats reads simulator trace logs, aggregates per-user statistics in a
single pass per file and writes CSV series named <METRIC>_<DIR>_plot<tag>.csv.

Files are processed in the order given; the first malformed file aborts the run.`,
		SilenceUsage: true,
	}
	root.SetGlobalNormalizationFunc(underscoreFlags)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (defaults are used when empty)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().StringVarP(&opts.outDir, "out", "o", ".", "directory the series are written to")

	for _, def := range traceCommands {
		root.AddCommand(newTraceCommand(opts, def))
	}
	root.AddCommand(newCampaignCommand(opts))
	root.AddCommand(newAllocCommand(opts))
	return root
}

// underscoreFlags accepts --min_size for --min-size, matching the config keys.
func underscoreFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// environment is what a command needs after flags are parsed.
type environment struct {
	cfg    *configs.Config
	logger loggers.Logger
}

func (o *globalOptions) load(cmd *cobra.Command) (*environment, context.Context, error) {
	cfg, err := configs.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := loggers.NewConsole(level, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With().Str(loggers.FieldComponent, cmd.Name()).Logger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &environment{cfg: cfg, logger: logger}, logger.WithContext(ctx), nil
}

// reportStore writes into the --out directory.
func (o *globalOptions) reportStore() (stores.ReportStore, error) {
	fileStorage, err := filestorages.NewFileStorage(o.outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize output storage: %w", err)
	}
	return stores.NewReportStore(fileStorage, ""), nil
}
