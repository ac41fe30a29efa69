// Package commands implements the CLI commands for tally.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
	"go.trai.ch/tally/internal/build"
	"go.trai.ch/tally/internal/core/domain"
)

// CLI represents the command line interface for tally.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Send(ctx context.Context, opts app.Options, hit domain.Hit) error
	Time(ctx context.Context, opts app.Options, req app.TimeRequest) error
	Kinds(opts app.Options) ([]app.KindInfo, error)
	Check(ctx context.Context, opts app.Options) ([]domain.TrackerKind, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "Send analytics hits through named trackers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to tally.yaml (default: search upwards from the working directory)")
	flags.StringP("tracker", "t", "", "Tracker kind to send through: app, global or ecommerce")
	flags.Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSendCmd())
	rootCmd.AddCommand(c.newTimeCmd())
	rootCmd.AddCommand(c.newKindsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	tracker, _ := cmd.Flags().GetString("tracker")
	jsonLogs, _ := cmd.Flags().GetBool("json")

	return app.Options{
		ConfigPath: configPath,
		Tracker:    tracker,
		JSON:       jsonLogs,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
