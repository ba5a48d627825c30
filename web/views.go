// Package web empaqueta las vistas HTML de la consola. Las plantillas van
// embebidas en el binario para que el despliegue sea un solo artefacto.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
)

//go:embed templates
var templates embed.FS

// Engine construye el motor de vistas con los helpers de formato registrados.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("date", formatDate)
	engine.AddFunc("cell", formatCell)
	return engine
}

// formatDate imprime fechas como YYYY-MM-DD; nil queda en blanco.
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("2006-01-02")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	default:
		return ""
	}
}

// formatCell imprime un valor de celda de cualquier tipo que devuelva el
// driver. NULL (nil) queda en blanco, igual que los punteros sin valor.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case *int64:
		if x == nil {
			return ""
		}
		return fmt.Sprintf("%d", *x)
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
