package handlers

import (
	"fmt"

	"productgen/internal/domain"
	applog "productgen/internal/log"
	"productgen/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	Catalog *services.CatalogService
}

// Home shows what is currently imported next to the generator's categories.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	sum, err := h.Catalog.Summary()
	if err != nil {
		applog.Error(c, "page.home", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load the catalog summary.")
	}
	return render(c, "index", fiber.Map{
		"Summary":    sum,
		"Categories": domain.DefaultCatalog().Categories,
	})
}

func fmtMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
