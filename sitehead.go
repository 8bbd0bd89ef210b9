// Package sitehead resolves the document head (title, description, Open Graph
// and Twitter card tags) for pages of a static site.
//
// Site-wide defaults come from a SiteMetadata value loaded by the caller (see
// the sitedata package); per-page overrides come from PageMeta, typically
// parsed from front matter (see the frontmatter package). Resolve merges the
// two into a Head, which can be rendered as a templ component or serialised
// to JSON.
package sitehead

// DefaultLang is used for the root element when a page does not set one.
const DefaultLang = "en"

// Base tag values that do not depend on input.
const (
	OGTypeWebsite = "website"
	TwitterCard   = "summary"
)

// BaseTagCount is the number of tags Resolve emits before caller extras.
const BaseTagCount = 9

// Resolve merges page overrides with site defaults. site may be nil when no
// site metadata is available; missing values degrade to empty strings.
//
// The returned Meta always starts with the BaseTagCount base tags in a fixed
// order, followed by page.Meta in its original order. Duplicates are kept.
func Resolve(page PageMeta, site *SiteMetadata) Head {
	var siteTitle, siteDescription, twitter string
	if site != nil {
		siteTitle = site.Title
		siteDescription = site.Description
		twitter = site.Social.Twitter
	}

	description := page.Description
	if description == "" {
		description = siteDescription
	}

	lang := page.Lang
	if lang == "" {
		lang = DefaultLang
	}

	var titleTemplate string
	if siteTitle != "" {
		titleTemplate = "%s | " + siteTitle
	}

	meta := make([]MetaTag, 0, BaseTagCount+len(page.Meta))
	meta = append(meta,
		MetaTag{Name: "description", Content: description},
		MetaTag{Property: "og:title", Content: page.Title},
		MetaTag{Property: "og:description", Content: description},
		MetaTag{Property: "og:type", Content: OGTypeWebsite},
		MetaTag{Name: "twitter:card", Content: TwitterCard},
		MetaTag{Name: "twitter:creator", Content: twitter},
		MetaTag{Name: "twitter:title", Content: page.Title},
		MetaTag{Name: "twitter:description", Content: description},
		MetaTag{Property: "og:site_name", Content: siteTitle},
	)
	meta = append(meta, page.Meta...)

	return Head{
		HTMLAttributes: HTMLAttributes{Lang: lang},
		Title:          page.Title,
		TitleTemplate:  titleTemplate,
		Meta:           meta,
	}
}
