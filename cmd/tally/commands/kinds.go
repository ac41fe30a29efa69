package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/ui/style"
)

func (c *CLI) newKindsCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List tracker kinds and their configured resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			kinds, err := c.app.Kinds(opts)
			if err != nil {
				return err
			}

			var ready []domain.TrackerKind
			if check {
				if ready, err = c.app.Check(cmd.Context(), opts); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, k := range kinds {
				marker := style.Circle
				if k.Default {
					marker = style.Dot
				}
				trackingID := k.Settings.TrackingID
				if trackingID == "" {
					trackingID = "-"
				}
				_, _ = fmt.Fprintf(out, "%s %-10s %-20s %-14s %s%%\n",
					marker,
					k.Kind,
					k.Settings.Resource,
					trackingID,
					strconv.FormatFloat(k.Settings.SampleRate, 'f', -1, 64),
				)
			}
			if check {
				_, _ = fmt.Fprintf(out, "%s %d of %d trackers ready\n", style.Check, len(ready), len(kinds))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Create every tracker through the configured sink")
	return cmd
}
