package preview

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/sitehead"
	"github.com/eringen/sitehead/frontmatter"
	"github.com/eringen/sitehead/internal/logging"
)

// ErrPageNotFound is returned when no page source exists for a request path.
var ErrPageNotFound = errors.New("preview: page not found")

// pageFile maps a request path to a page source under ContentDir.
// "" and paths ending in "/" map to index.md; a trailing ".md" is optional.
func (a *App) pageFile(reqPath string) string {
	p := path.Clean("/" + reqPath)
	if reqPath == "" || strings.HasSuffix(reqPath, "/") {
		p = path.Join(p, "index")
	}
	p = strings.TrimSuffix(p, ".md")
	return filepath.Join(a.Config.ContentDir, filepath.FromSlash(p)+".md")
}

func (a *App) loadPage(reqPath string) (frontmatter.Page, error) {
	page, err := frontmatter.ParseFile(a.pageFile(reqPath))
	if errors.Is(err, fs.ErrNotExist) {
		return frontmatter.Page{}, ErrPageNotFound
	}
	return page, err
}

// resolve loads the page for the wildcard path and merges it with the
// current site metadata.
func (a *App) resolve(c echo.Context) (sitehead.Head, frontmatter.Page, error) {
	page, err := a.loadPage(c.Param("*"))
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return sitehead.Head{}, page, echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
		}
		return sitehead.Head{}, page, err
	}
	site, err := a.Source.SiteMetadata(c.Request().Context())
	if err != nil {
		return sitehead.Head{}, page, err
	}
	return sitehead.Resolve(page.Meta, site), page, nil
}

func (a *App) handleHead(c echo.Context) error {
	head, _, err := a.resolve(c)
	if err != nil {
		return err
	}
	return Render(c, head.Component())
}

func (a *App) handleHeadJSON(c echo.Context) error {
	head, _, err := a.resolve(c)
	if err != nil {
		return err
	}
	b, err := head.JSON()
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, b)
}

func (a *App) handlePage(c echo.Context) error {
	head, page, err := a.resolve(c)
	if err != nil {
		return err
	}
	return Render(c, Document(head, string(page.Body)))
}

func (a *App) handleInvalidate(c echo.Context) error {
	a.InvalidateSite()
	return c.NoContent(http.StatusNoContent)
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.errorDocument(c, "Not Found"))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		logging.FromContext(c.Request().Context()).Error().Err(err).Int("status", code).Msg("server error")
		_ = RenderStatus(c, code, a.errorDocument(c, "Server Error"))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// errorDocument renders an error page whose head still carries the site
// defaults. Site metadata failures fall back to no site.
func (a *App) errorDocument(c echo.Context, title string) templ.Component {
	site, err := a.Source.SiteMetadata(c.Request().Context())
	if err != nil {
		site = nil
	}
	head := sitehead.Resolve(sitehead.PageMeta{
		Title: title,
		Meta:  []sitehead.MetaTag{{Name: "robots", Content: "noindex"}},
	}, site)
	return Document(head, title)
}
