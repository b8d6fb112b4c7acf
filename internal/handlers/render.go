package handlers

import (
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// render writes a gomponents node as the HTML response body.
func render(c echo.Context, status int, node cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(status)
	return node.Render(c.Response().Writer)
}
