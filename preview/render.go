package preview

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/sitehead"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// Document renders a complete HTML document: the resolved head, and the
// page body shown verbatim.
func Document(head sitehead.Head, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html"); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, head.HTMLAttrs()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">\n<head>\n"+
			"<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
			return err
		}
		if err := head.Component().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</head>\n<body>\n<main><pre>"+templ.EscapeString(body)+"</pre></main>\n</body>\n</html>\n")
		return err
	})
}
