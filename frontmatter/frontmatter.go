// Package frontmatter extracts per-page head metadata from the front matter
// of static-site pages. YAML front matter is fenced by "---" lines, TOML by
// "+++" lines.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/eringen/sitehead"
)

// ErrUnterminated is returned when an opening fence has no closing fence.
var ErrUnterminated = errors.New("frontmatter: unterminated front matter")

// Format identifies the front matter syntax.
type Format string

const (
	FormatNone Format = ""
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Page is a parsed page source.
type Page struct {
	Meta   sitehead.PageMeta
	Format Format
	Body   []byte
}

type pageFrontMatter struct {
	Title       string             `yaml:"title" toml:"title"`
	Description string             `yaml:"description" toml:"description"`
	Lang        string             `yaml:"lang" toml:"lang"`
	Meta        []sitehead.MetaTag `yaml:"meta" toml:"meta"`
}

// Parse reads a page and splits it into front matter and body. Input without
// an opening fence has empty Meta and is returned whole as Body.
func Parse(r io.Reader) (Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Page{}, fmt.Errorf("frontmatter: read page: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	format, fence := detect(data)
	if format == FormatNone {
		return Page{Body: data}, nil
	}

	raw, body, err := split(data, fence)
	if err != nil {
		return Page{}, err
	}

	var fm pageFrontMatter
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &fm); err != nil {
			return Page{}, fmt.Errorf("frontmatter: decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(raw), &fm); err != nil {
			return Page{}, fmt.Errorf("frontmatter: decode toml: %w", err)
		}
	}

	return Page{
		Meta: sitehead.PageMeta{
			Title:       fm.Title,
			Description: fm.Description,
			Lang:        fm.Lang,
			Meta:        fm.Meta,
		},
		Format: format,
		Body:   body,
	}, nil
}

// ParseFile parses the page at path.
func ParseFile(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, fmt.Errorf("frontmatter: open page: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func detect(data []byte) (Format, string) {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	switch string(bytes.TrimRight(line, " \t\r")) {
	case "---":
		return FormatYAML, "---"
	case "+++":
		return FormatTOML, "+++"
	}
	return FormatNone, ""
}

// split returns the front matter between the fences and the body after the
// closing fence.
func split(data []byte, fence string) ([]byte, []byte, error) {
	_, rest, _ := bytes.Cut(data, []byte("\n"))
	start := len(data) - len(rest)
	offset := start
	for offset < len(data) {
		line := data[offset:]
		next := len(data)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if string(bytes.TrimRight(line, " \t\r")) == fence {
			return data[start:offset], data[next:], nil
		}
		offset = next
	}
	return nil, nil, ErrUnterminated
}
