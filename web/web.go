// Package web contiene las vistas HTML embebidas en el binario.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewEngine construye el motor de plantillas sobre las vistas embebidas.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(fmt.Sprintf("web: vistas embebidas: %v", err))
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
	return engine
}
