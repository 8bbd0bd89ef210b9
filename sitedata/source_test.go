package sitedata

import (
	"context"
	"errors"
	"testing"

	"github.com/eringen/sitehead"
)

func TestStaticNil(t *testing.T) {
	md, err := Static(nil).SiteMetadata(context.Background())
	if err != nil || md != nil {
		t.Errorf("Static(nil) = %+v, %v; want nil, nil", md, err)
	}
}

func TestFallback(t *testing.T) {
	first := &sitehead.SiteMetadata{Title: "First"}
	second := &sitehead.SiteMetadata{Title: "Second"}

	tests := []struct {
		name    string
		sources []Source
		want    string
	}{
		{"first wins", []Source{Static(first), Static(second)}, "First"},
		{"skips nil result", []Source{Static(nil), Static(second)}, "Second"},
		{"skips nil source", []Source{nil, Static(first)}, "First"},
		{"all empty", []Source{Static(nil)}, ""},
		{"no sources", nil, ""},
	}
	for _, tt := range tests {
		md, err := Fallback(tt.sources...).SiteMetadata(context.Background())
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		got := ""
		if md != nil {
			got = md.Title
		}
		if got != tt.want {
			t.Errorf("%s: Title = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFallbackStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := SourceFunc(func(context.Context) (*sitehead.SiteMetadata, error) {
		return nil, boom
	})

	_, err := Fallback(failing, Static(&sitehead.SiteMetadata{Title: "x"})).SiteMetadata(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
