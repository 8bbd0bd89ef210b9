package sitedata

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/eringen/sitehead"
)

// Environment variables that override values from the config file.
const (
	EnvTitle       = "SITE_TITLE"
	EnvDescription = "SITE_DESCRIPTION"
	EnvTwitter     = "SITE_TWITTER"
)

// ConfigSource reads site metadata from a site config file. The format is
// chosen from the file extension (.yaml, .yml, .toml, .json). Metadata lives
// under site.siteMetadata, or under a top-level siteMetadata key.
//
// With an empty Path only the environment is consulted.
type ConfigSource struct {
	Path string
}

// SiteMetadata implements Source. The file is re-read on every call.
func (s ConfigSource) SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error) {
	v := viper.New()
	if s.Path != "" {
		v.SetConfigFile(s.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("sitedata: read site config %s: %w", s.Path, err)
		}
	}

	prefix := "site.siteMetadata"
	if !v.IsSet(prefix) && v.IsSet("siteMetadata") {
		prefix = "siteMetadata"
	}
	titleKey := prefix + ".title"
	descriptionKey := prefix + ".description"
	twitterKey := prefix + ".social.twitter"

	// BindEnv only fails without a key.
	_ = v.BindEnv(titleKey, EnvTitle)
	_ = v.BindEnv(descriptionKey, EnvDescription)
	_ = v.BindEnv(twitterKey, EnvTwitter)

	if !v.IsSet(prefix) && !v.IsSet(titleKey) && !v.IsSet(descriptionKey) && !v.IsSet(twitterKey) {
		return nil, nil
	}
	return &sitehead.SiteMetadata{
		Title:       v.GetString(titleKey),
		Description: v.GetString(descriptionKey),
		Social:      sitehead.Social{Twitter: v.GetString(twitterKey)},
	}, nil
}
