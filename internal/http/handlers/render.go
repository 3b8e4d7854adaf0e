package handlers

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views returns the embedded HTML template engine.
func Views() fiber.Views {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("money", func(v float64) string { return fmtMoney(v) })
	return engine
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Now"] = time.Now().UTC().Format(time.RFC1123)
	if rid, ok := c.Locals("requestid").(string); ok {
		data["RequestID"] = rid
	}
	return c.Render(tmpl, data)
}

// jsonError writes the {"error": msg} body used by every API endpoint.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
