// Package web holds the embedded presentation assets: the page template
// and the stylesheet. Embedding keeps the binary self-contained regardless
// of working directory.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates static
var assets embed.FS

// Engine returns the fiber view engine backed by the embedded templates.
func Engine() (*html.Engine, error) {
	sub, err := fs.Sub(assets, "templates")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}

// Static returns the embedded static assets as an http.FileSystem.
func Static() (http.FileSystem, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
