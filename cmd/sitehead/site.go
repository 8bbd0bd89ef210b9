package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/sitehead"
	"github.com/eringen/sitehead/internal/logging"
	"github.com/eringen/sitehead/sitedata"
)

func newSiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Inspect or store site metadata",
	}
	cmd.AddCommand(newSiteShowCmd(), newSiteSetCmd(), newSiteClearCmd())
	return cmd
}

func newSiteShowCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the site metadata the selected sources resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, closeSource, err := src.open()
			if err != nil {
				return err
			}
			defer closeSource()

			md, err := source.SiteMetadata(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if md == nil {
				_, err = fmt.Fprintln(out, "no site metadata")
				return err
			}
			_, err = fmt.Fprintf(out, "title:       %s\ndescription: %s\ntwitter:     %s\n",
				md.Title, md.Description, md.Social.Twitter)
			return err
		},
	}
	src.register(cmd)
	return cmd
}

func newSiteSetCmd() *cobra.Command {
	var (
		db string
		md sitehead.SiteMetadata
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store site metadata in a sqlite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sitedata.NewStore(db)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(cmd.Context(), md); err != nil {
				return err
			}
			logging.Default().Info().Str("db", db).Str("title", md.Title).Msg("site metadata saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "data/site.db", "site metadata database (sqlite)")
	cmd.Flags().StringVar(&md.Title, "title", "", "site title")
	cmd.Flags().StringVar(&md.Description, "description", "", "site description")
	cmd.Flags().StringVar(&md.Social.Twitter, "twitter", "", "site twitter handle")
	return cmd
}

func newSiteClearCmd() *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored site metadata from a sqlite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sitedata.NewStore(db)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			logging.Default().Info().Str("db", db).Msg("site metadata cleared")
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", "data/site.db", "site metadata database (sqlite)")
	return cmd
}
