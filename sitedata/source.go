// Package sitedata loads the site-wide SiteMetadata that sitehead.Resolve
// falls back on. Sources cover the data-layer query result (JSON), a site
// config file (YAML/TOML/JSON through viper), and a SQLite settings table.
package sitedata

import (
	"context"

	"github.com/eringen/sitehead"
)

// Source loads site metadata for the current build or render. A nil result
// with a nil error means the site has no metadata.
type Source interface {
	SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) (*sitehead.SiteMetadata, error)

// SiteMetadata calls f.
func (f SourceFunc) SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error) {
	return f(ctx)
}

// Static returns a Source that always yields md. md may be nil.
func Static(md *sitehead.SiteMetadata) Source {
	return SourceFunc(func(context.Context) (*sitehead.SiteMetadata, error) {
		if md == nil {
			return nil, nil
		}
		cp := *md
		return &cp, nil
	})
}

// Fallback returns a Source that tries each source in order and yields the
// first non-nil metadata. An error from any source stops the chain.
func Fallback(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context) (*sitehead.SiteMetadata, error) {
		for _, s := range sources {
			if s == nil {
				continue
			}
			md, err := s.SiteMetadata(ctx)
			if err != nil {
				return nil, err
			}
			if md != nil {
				return md, nil
			}
		}
		return nil, nil
	})
}
