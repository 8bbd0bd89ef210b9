package sitehead

// SiteMetadata is the site-wide configuration that supplies fallback values
// for every page: default title, description, and social handles.
type SiteMetadata struct {
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Social      Social `json:"social" mapstructure:"social"`
}

// Social holds the site's social network handles.
type Social struct {
	Twitter string `json:"twitter,omitempty" mapstructure:"twitter"`
}

// PageMeta carries per-page overrides into Resolve. Zero values mean absent.
type PageMeta struct {
	Title       string    // required, rendered as-is or through the site template
	Description string    // falls back to SiteMetadata.Description
	Lang        string    // root element language (default "en")
	Meta        []MetaTag // extra tags appended after the base set
}

// MetaTag is a single <meta> entry. Open Graph entries use Property,
// everything else uses Name.
type MetaTag struct {
	Name     string `json:"name,omitempty" yaml:"name" toml:"name"`
	Property string `json:"property,omitempty" yaml:"property" toml:"property"`
	Content  string `json:"content" yaml:"content" toml:"content"`
}

// Key returns the tag's Name, or its Property when Name is empty.
func (t MetaTag) Key() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Property
}

// HTMLAttributes are emitted on the document's root <html> element.
type HTMLAttributes struct {
	Lang string `json:"lang"`
}

// Head is the resolved document head handed to a renderer.
type Head struct {
	HTMLAttributes HTMLAttributes `json:"htmlAttributes"`
	Title          string         `json:"title"`
	TitleTemplate  string         `json:"titleTemplate,omitempty"` // empty when the site has no title
	Meta           []MetaTag      `json:"meta"`
}

// HasTitleTemplate reports whether the title should be rendered through TitleTemplate.
func (h Head) HasTitleTemplate() bool {
	return h.TitleTemplate != ""
}

// Lookup returns the content of the first tag whose name or property is key.
func (h Head) Lookup(key string) (string, bool) {
	for _, t := range h.Meta {
		if t.Key() == key {
			return t.Content, true
		}
	}
	return "", false
}
