package frontmatter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/sitehead"
)

func TestParseYAML(t *testing.T) {
	input := `---
title: Home
description: Welcome home
lang: fr
meta:
  - name: robots
    content: noindex
  - property: og:image
    content: /cover.png
---
# Body
`
	page, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if page.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", page.Format, FormatYAML)
	}
	if page.Meta.Title != "Home" {
		t.Errorf("Title = %q, want %q", page.Meta.Title, "Home")
	}
	if page.Meta.Description != "Welcome home" {
		t.Errorf("Description = %q, want %q", page.Meta.Description, "Welcome home")
	}
	if page.Meta.Lang != "fr" {
		t.Errorf("Lang = %q, want %q", page.Meta.Lang, "fr")
	}
	want := []sitehead.MetaTag{
		{Name: "robots", Content: "noindex"},
		{Property: "og:image", Content: "/cover.png"},
	}
	if len(page.Meta.Meta) != len(want) {
		t.Fatalf("Meta = %+v, want %+v", page.Meta.Meta, want)
	}
	for i := range want {
		if page.Meta.Meta[i] != want[i] {
			t.Errorf("Meta[%d] = %+v, want %+v", i, page.Meta.Meta[i], want[i])
		}
	}
	if string(page.Body) != "# Body\n" {
		t.Errorf("Body = %q, want %q", page.Body, "# Body\n")
	}
}

func TestParseTOML(t *testing.T) {
	input := `+++
title = "Page"
description = "Custom"

[[meta]]
name = "robots"
content = "noindex"
+++
body`
	page, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if page.Format != FormatTOML {
		t.Errorf("Format = %q, want %q", page.Format, FormatTOML)
	}
	if page.Meta.Title != "Page" || page.Meta.Description != "Custom" {
		t.Errorf("Meta = %+v", page.Meta)
	}
	if len(page.Meta.Meta) != 1 || page.Meta.Meta[0] != (sitehead.MetaTag{Name: "robots", Content: "noindex"}) {
		t.Errorf("Meta.Meta = %+v", page.Meta.Meta)
	}
	if string(page.Body) != "body" {
		t.Errorf("Body = %q, want %q", page.Body, "body")
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	input := "# Just markdown\n\n---\nnot front matter\n"
	page, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if page.Format != FormatNone {
		t.Errorf("Format = %q, want none", page.Format)
	}
	if page.Meta.Title != "" || page.Meta.Meta != nil {
		t.Errorf("Meta = %+v, want zero", page.Meta)
	}
	if string(page.Body) != input {
		t.Errorf("Body = %q, want input unchanged", page.Body)
	}
}

func TestParseCRLFAndBOM(t *testing.T) {
	input := "\ufeff---\r\ntitle: Windows\r\n---\r\nbody\r\n"
	page, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if page.Meta.Title != "Windows" {
		t.Errorf("Title = %q, want %q", page.Meta.Title, "Windows")
	}
	if string(page.Body) != "body\r\n" {
		t.Errorf("Body = %q, want %q", page.Body, "body\r\n")
	}
}

func TestParseEmptyFrontMatter(t *testing.T) {
	page, err := Parse(strings.NewReader("---\n---\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if page.Meta.Title != "" {
		t.Errorf("Title = %q, want empty", page.Meta.Title)
	}
	if len(page.Body) != 0 {
		t.Errorf("Body = %q, want empty", page.Body)
	}
}

func TestParseUnterminated(t *testing.T) {
	tests := []string{
		"---\ntitle: Home\n",
		"+++\ntitle = \"x\"\n---\n",
		"---",
	}
	for _, input := range tests {
		_, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrUnterminated) {
			t.Errorf("Parse(%q) err = %v, want ErrUnterminated", input, err)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"---\ntitle: [unclosed\n---\n", "decode yaml"},
		{"+++\ntitle = \n+++\n", "decode toml"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Parse(%q) err = %v, want containing %q", tt.input, err, tt.want)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "about.md")
	if err := os.WriteFile(path, []byte("---\ntitle: About\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	page, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if page.Meta.Title != "About" {
		t.Errorf("Title = %q, want %q", page.Meta.Title, "About")
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("ParseFile on missing file should fail")
	}
}
