package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single hit through the selected tracker",
	}

	event := c.newHitCmd("event CATEGORY ACTION LABEL VALUE", "Send an event", 4, func(args []string) (domain.Hit, error) {
		value, err := parseValue(args[3])
		if err != nil {
			return domain.Hit{}, err
		}
		return domain.NewEventHit(args[0], args[1], args[2], value), nil
	})
	event.Example = "  tally send event cart refund card -- -5"

	timing := c.newHitCmd("timing CATEGORY INTERVAL_MS NAME LABEL", "Send a user timing", 4, func(args []string) (domain.Hit, error) {
		interval, err := parseValue(args[1])
		if err != nil {
			return domain.Hit{}, err
		}
		return domain.NewTimingHit(args[0], interval, args[2], args[3]), nil
	})
	timing.Example = "  tally send timing load 120 boot cold"

	cmd.AddCommand(
		c.newHitCmd("screen NAME", "Send a screen view", 1, func(args []string) (domain.Hit, error) {
			hit := domain.NewScreenViewHit()
			hit.ScreenName = args[0]
			return hit, nil
		}),
		event,
		timing,
		c.newHitCmd("exception DESCRIPTION", "Send a non-fatal exception report", 1, func(args []string) (domain.Hit, error) {
			return domain.NewExceptionHit(args[0]), nil
		}),
	)

	return cmd
}

// newHitCmd builds a send subcommand. Arguments starting with '-' are read as
// flags, so negative values must follow "--".
func (c *CLI) newHitCmd(use, short string, nargs int, build func([]string) (domain.Hit, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			hit, err := build(args)
			if err != nil {
				return err
			}
			return c.app.Send(cmd.Context(), options(cmd), hit)
		},
	}
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, zerr.With(domain.ErrInvalidHitValue, "value", s)
	}
	return v, nil
}
