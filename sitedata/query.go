package sitedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/eringen/sitehead"
)

// QueryResult is the shape of the site query answered by the data layer:
//
//	{ "site": { "siteMetadata": { "title", "description", "social": { "twitter" } } } }
//
// Every field may be missing or null.
type QueryResult struct {
	Site *struct {
		SiteMetadata *QuerySiteMetadata `json:"siteMetadata"`
	} `json:"site"`
}

// QuerySiteMetadata is the nullable siteMetadata node of a QueryResult.
type QuerySiteMetadata struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Social      *struct {
		Twitter *string `json:"twitter"`
	} `json:"social"`
}

// SiteMetadata flattens the query result. It returns nil when site or
// siteMetadata is absent; null leaf fields become empty strings.
func (r QueryResult) SiteMetadata() *sitehead.SiteMetadata {
	if r.Site == nil || r.Site.SiteMetadata == nil {
		return nil
	}
	q := r.Site.SiteMetadata
	md := &sitehead.SiteMetadata{
		Title:       deref(q.Title),
		Description: deref(q.Description),
	}
	if q.Social != nil {
		md.Social.Twitter = deref(q.Social.Twitter)
	}
	return md
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DecodeQueryResult reads a JSON query result. A top-level "data" envelope,
// as returned by GraphQL endpoints, is unwrapped.
func DecodeQueryResult(r io.Reader) (QueryResult, error) {
	var envelope struct {
		Data *QueryResult `json:"data"`
		QueryResult
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return QueryResult{}, fmt.Errorf("sitedata: decode query result: %w", err)
	}
	if envelope.Data != nil {
		return *envelope.Data, nil
	}
	return envelope.QueryResult, nil
}

// JSONSource reads a query result from a JSON file on every call.
type JSONSource struct {
	Path string
}

// SiteMetadata implements Source.
func (s JSONSource) SiteMetadata(ctx context.Context) (*sitehead.SiteMetadata, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("sitedata: open query result: %w", err)
	}
	defer f.Close()

	res, err := DecodeQueryResult(f)
	if err != nil {
		return nil, err
	}
	return res.SiteMetadata(), nil
}
