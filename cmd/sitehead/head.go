package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/sitehead"
	"github.com/eringen/sitehead/frontmatter"
	"github.com/eringen/sitehead/internal/logging"
)

func newHeadCmd() *cobra.Command {
	var (
		src      sourceFlags
		jsonOut  bool
		noExtras bool
	)

	cmd := &cobra.Command{
		Use:   "head <page>",
		Short: "Print the resolved head of a page",
		Long: `Resolve the head of a page source (markdown with YAML "---" or TOML "+++"
front matter) against the site metadata and print it as HTML, or as JSON
with --json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := frontmatter.ParseFile(args[0])
			if err != nil {
				return err
			}
			if noExtras {
				page.Meta.Meta = nil
			}

			source, closeSource, err := src.open()
			if err != nil {
				return err
			}
			defer closeSource()

			site, err := source.SiteMetadata(cmd.Context())
			if err != nil {
				return err
			}
			logging.Default().Debug().
				Str("page", args[0]).
				Bool("site", site != nil).
				Msg("resolving head")

			head := sitehead.Resolve(page.Meta, site)
			out := cmd.OutOrStdout()
			if jsonOut {
				b, err := head.JSON()
				if err != nil {
					return fmt.Errorf("sitehead: encode head: %w", err)
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			return head.Component().Render(cmd.Context(), out)
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the head as JSON")
	cmd.Flags().BoolVar(&noExtras, "base-only", false, "omit the page's extra meta tags")
	return cmd
}
