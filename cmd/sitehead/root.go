package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/sitehead/internal/logging"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sitehead",
		Short: "Resolve and preview document head metadata for static-site pages",
		Long: `sitehead merges site-wide defaults (title, description, social handles)
with per-page front matter into the title, description, Open Graph and
Twitter card tags of each page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDefault(logging.New(logging.Config{
				Level:  opts.logLevel,
				Format: opts.logFormat,
				Output: cmd.ErrOrStderr(),
			}))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (console, json)")

	cmd.AddCommand(
		newHeadCmd(),
		newServeCmd(),
		newSiteCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sitehead version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitehead %s\n", version)
		},
	}
}
