package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"trace-analytics/internal/aggregators"
	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/models"
	"trace-analytics/internal/reports"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/shared/ulid"

	"github.com/spf13/cobra"
)

type traceCommandDef struct {
	format      models.TraceFormat
	defaultFile string
	short       string
	userTable   bool
}

var traceCommands = []traceCommandDef{
	{format: models.FormatRxTrace, defaultFile: "RxPacketTrace.txt", short: "BLER, SINR and MCS series from an RxPacketTrace", userTable: true},
	{format: models.FormatBlerLog, defaultFile: "log.txt", short: "BLER, SINR and MCS series from TBLER log lines", userTable: true},
	{format: models.FormatPacketLog, defaultFile: "log.txt", short: "received bytes per file from byte counter log lines"},
	{format: models.FormatBeamGainLog, defaultFile: "log.txt", short: "beamforming gain samples per beam pair"},
	{format: models.FormatPdcp, defaultFile: "DlPdcpStats.txt", short: "PDCP delay distribution from PDCP stats"},
}

type traceOptions struct {
	tag     string
	labels  []string
	minSize int64
}

func newTraceCommand(global *globalOptions, def traceCommandDef) *cobra.Command {
	opts := &traceOptions{}
	cmd := &cobra.Command{
		Use:   string(def.format) + " [files...]",
		Short: def.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ctx, err := global.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-size") {
				opts.minSize = env.cfg.Parsing.BlerMinTransferSize
			}
			files := args
			if len(files) == 0 {
				files = []string{def.defaultFile}
			}
			labels, err := resolveLabels(files, opts.labels)
			if err != nil {
				return err
			}

			pipeline := ingestors.NewPipeline(aggregators.Options{
				MinTransferSize: opts.minSize,
				MinDrbID:        env.cfg.Parsing.PdcpMinDrbID,
			})
			set, err := processFiles(ctx, pipeline, def.format, files, labels)
			if err != nil {
				return err
			}

			store, err := global.reportStore()
			if err != nil {
				return err
			}
			keys, err := reports.NewWriter(store, env.cfg.Campaign.EcdfBins).Write(ctx, set, opts.tag)
			if err != nil {
				return err
			}
			for _, key := range keys {
				env.logger.Info().Str("report", key).Msg("written")
			}
			if def.userTable {
				for _, line := range reports.UserLines(set) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "suffix appended to every output name")
	cmd.Flags().StringSliceVarP(&opts.labels, "labels", "l", nil, "comma-separated series labels, one per file")
	cmd.Flags().Int64Var(&opts.minSize, "min-size", aggregators.DefaultMinTransferSize, "drop block error reports of at most this many bytes (-1 keeps all)")
	return cmd
}

// resolveLabels defaults labels to the file names.
func resolveLabels(files, labels []string) ([]string, error) {
	if len(labels) == 0 {
		return files, nil
	}
	if len(labels) != len(files) {
		return nil, fmt.Errorf("got %d labels for %d files", len(labels), len(files))
	}
	return labels, nil
}

// processFiles aggregates the files one after the other with fresh aggregates per file.
func processFiles(ctx context.Context, pipeline ingestors.Pipeline, format models.TraceFormat, files, labels []string) (*models.ResultSet, error) {
	set := &models.ResultSet{}
	for i, name := range files {
		result, err := processFile(ctx, pipeline, format, name)
		if err != nil {
			return nil, err
		}
		result.ID = ulid.NewULIDAt(time.Now())
		result.Label = labels[i]
		result.CreatedAt = time.Now().UTC()
		set.Add(result)

		loggers.Ctx(ctx).Info().
			Str(loggers.FieldTraceSource, name).
			Int("lines_read", result.LinesRead).
			Int("diagnostics", len(result.Diagnostics)).
			Msg("trace aggregated")
	}
	return set, nil
}

func processFile(ctx context.Context, pipeline ingestors.Pipeline, format models.TraceFormat, name string) (*models.FileResult, error) {
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	defer f.Close()
	return pipeline.Process(ctx, name, format, f)
}
