package cli

import (
	"fmt"

	"trace-analytics/internal/aggregators"
	"trace-analytics/internal/campaigns"
	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/stores"

	"github.com/spf13/cobra"
)

func newCampaignCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "campaign [dir]",
		Short: "Summarize the runs of a finished simulation campaign",
		Long: `campaign reads <dir>/data/<run>/params.json and the run's trace files, writes
one row per run to parsed_results.csv and one row per parameter combination
(ignoring the random seed) to summary_results.csv inside <dir>.

Runs that fail to parse are skipped and reported once all runs are done.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ctx, err := global.load(cmd)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			fileStorage, err := filestorages.NewFileStorage(dir)
			if err != nil {
				return fmt.Errorf("failed to open campaign: %w", err)
			}
			c := env.cfg.Campaign
			loader := campaigns.NewLoader(fileStorage, c.DataDir, c.ParamsFile)
			pipeline := ingestors.NewPipeline(aggregators.Options{
				MinTransferSize: aggregators.NoSizeFilter,
				MinDrbID:        env.cfg.Parsing.PdcpMinDrbID,
			})
			analyzer := campaigns.NewAnalyzer(loader, pipeline, campaigns.Files{
				RxTrace: c.RxTraceFile,
				UlPdcp:  c.UlPdcpFile,
				DlPdcp:  c.DlPdcpFile,
			})
			service := campaigns.NewCampaignService(loader, analyzer, stores.NewReportStore(fileStorage, ""), campaigns.Options{
				ResultsName:  c.ResultsName,
				SummaryName:  c.SummaryName,
				IgnoreParams: c.IgnoreParams,
			})

			report, err := service.Summarize(ctx)
			if report != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%d runs, %d failed, %d parameter combinations\n",
					len(report.Runs), report.Failed, len(report.Summary))
			}
			return err
		},
	}
}
