package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"trace-analytics/internal/allocations"
	"trace-analytics/internal/models"
	"trace-analytics/internal/shared/filestorages"

	"github.com/spf13/cobra"
)

type allocOptions struct {
	tag      string
	subframe int
	count    int
}

func newAllocCommand(global *globalOptions) *cobra.Command {
	opts := &allocOptions{}
	cmd := &cobra.Command{
		Use:   "alloc [file]",
		Short: "Lay out the resource allocation of subframes",
		Long: `alloc reads a scheduler log (*.log) or an RxPacketTrace and writes the slot
rectangles of the requested subframes (frame*10+subframe) in the unit square
to ALLOC_plot<tag>.csv.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ctx, err := global.load(cmd)
			if err != nil {
				return err
			}
			file := "RxPacketTrace.txt"
			if len(args) == 1 {
				file = args[0]
			}
			if opts.count < 1 {
				return fmt.Errorf("count must be >= 1")
			}

			fileStorage, err := filestorages.NewFileStorage(filepath.Dir(file))
			if err != nil {
				return err
			}
			service, err := allocations.NewAllocationService(fileStorage, filepath.Base(file),
				env.cfg.Allocation.CacheSize, env.cfg.Allocation.MaxSymbols)
			if err != nil {
				return err
			}

			table := &models.Table{
				Name:   "ALLOC_plot" + opts.tag,
				Header: []string{"subframe", "x", "y", "width", "height", "type", "label"},
			}
			maxSubframe := 0
			for sf := opts.subframe; sf < opts.subframe+opts.count; sf++ {
				frame, err := service.Frame(ctx, sf)
				if err != nil {
					return err
				}
				maxSubframe = frame.MaxSubframe
				for _, r := range allocations.Layout(frame) {
					table.AddRow(strconv.Itoa(sf),
						models.FormatFloat(r.X), models.FormatFloat(r.Y),
						models.FormatFloat(r.Width), models.FormatFloat(r.Height),
						string(r.Type), r.Label)
				}
			}

			store, err := global.reportStore()
			if err != nil {
				return err
			}
			key, err := store.PutTable(ctx, table)
			if err != nil {
				return err
			}
			env.logger.Info().Str("report", key).Int("max_subframe", maxSubframe).Msg("written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.tag, "tag", "t", "", "suffix appended to the output name")
	cmd.Flags().IntVarP(&opts.subframe, "subframe", "s", 0, "first subframe (frame*10+subframe)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of consecutive subframes")
	return cmd
}
