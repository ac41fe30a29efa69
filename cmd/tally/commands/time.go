package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
	"go.trai.ch/tally/internal/core/domain"
)

func (c *CLI) newTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time CATEGORY NAME [LABEL] -- COMMAND [ARGS...]",
		Short: "Run a command and send its duration as a user timing",
		Args: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash < 0 || dash == len(args) {
				return domain.ErrNoCommandSpecified
			}
			return cobra.RangeArgs(2, 3)(cmd, args[:dash])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			req := app.TimeRequest{
				Category: args[0],
				Name:     args[1],
				Command:  args[dash:],
			}
			if dash == 3 {
				req.Label = args[2]
			}
			return c.app.Time(cmd.Context(), options(cmd), req)
		},
	}
}
