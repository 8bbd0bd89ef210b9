package sitehead

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DocumentTitle returns the text for the <title> element. The title template
// replaces every %s with Title. An empty Title with a template falls back to
// the site title alone.
func (h Head) DocumentTitle() string {
	if !h.HasTitleTemplate() {
		return h.Title
	}
	if h.Title == "" {
		siteName, _ := h.Lookup("og:site_name")
		return siteName
	}
	return strings.ReplaceAll(h.TitleTemplate, "%s", h.Title)
}

// HTMLAttrs returns the attributes for the root <html> element, for use as
// spread attributes in templ templates.
func (h Head) HTMLAttrs() templ.Attributes {
	return templ.Attributes{"lang": h.HTMLAttributes.Lang}
}

// Component returns a templ.Component that writes the <title> element
// followed by one <meta> element per tag, in order.
func (h Head) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<title>")
		b.WriteString(templ.EscapeString(h.DocumentTitle()))
		b.WriteString("</title>\n")
		for _, t := range h.Meta {
			writeMetaTag(&b, t)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeMetaTag(b *strings.Builder, t MetaTag) {
	b.WriteString("<meta ")
	if t.Name != "" {
		b.WriteString(`name="`)
		b.WriteString(templ.EscapeString(t.Name))
		b.WriteString(`" `)
	}
	if t.Property != "" {
		b.WriteString(`property="`)
		b.WriteString(templ.EscapeString(t.Property))
		b.WriteString(`" `)
	}
	b.WriteString(`content="`)
	b.WriteString(templ.EscapeString(t.Content))
	b.WriteString("\">\n")
}

// JSON encodes the head in the shape consumed by document-head renderers:
// {"htmlAttributes":{"lang":...},"title":...,"titleTemplate":...,"meta":[...]}.
func (h Head) JSON() ([]byte, error) {
	if h.Meta == nil {
		h.Meta = []MetaTag{}
	}
	return json.Marshal(h)
}
