package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/sitehead/sitedata"
)

// sourceFlags selects where site metadata is loaded from. Sources are tried
// in the order database, query result, site config; the environment
// overrides the site config.
type sourceFlags struct {
	site  string
	query string
	db    string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.site, "site", "", "site config file (yaml, toml or json)")
	cmd.Flags().StringVar(&f.query, "query", "", "site query result (json)")
	cmd.Flags().StringVar(&f.db, "db", "", "site metadata database (sqlite)")
}

// open builds the Source. The returned close func releases the database.
func (f *sourceFlags) open() (sitedata.Source, func() error, error) {
	var sources []sitedata.Source
	closeFn := func() error { return nil }

	if f.db != "" {
		store, err := sitedata.NewStore(f.db)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, store)
		closeFn = store.Close
	}
	if f.query != "" {
		sources = append(sources, sitedata.JSONSource{Path: f.query})
	}
	sources = append(sources, sitedata.ConfigSource{Path: f.site})

	return sitedata.Fallback(sources...), closeFn, nil
}
