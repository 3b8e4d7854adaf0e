package handlers

import (
	"errors"

	"productgen/internal/log"
	"productgen/internal/repos"
	"productgen/internal/services"
	"productgen/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" {
		var ok bool
		if category, ok = validate.Category(category); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
	}
	page, size := validate.Page(c.Query("page"), c.Query("page_size"))

	products, err := h.Catalog.ListProducts(category, page, size)
	if err != nil {
		log.Error(c, "products.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"page": page, "page_size": size, "products": products})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.UUID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, repos.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	if err != nil {
		log.Error(c, "products.get", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p)
}
