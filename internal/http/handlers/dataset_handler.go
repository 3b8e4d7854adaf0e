package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"productgen/internal/domain"
	applog "productgen/internal/log"
	"productgen/internal/services"
	"productgen/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// MaxSample bounds GET /api/v1/sample.
const MaxSample = 100

type DatasetHandler struct {
	Datasets *services.DatasetService
}

// Create generates a dataset and writes it under the configured output dir.
func (h *DatasetHandler) Create(c *fiber.Ctx) error {
	var req services.DatasetRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "body must be a JSON object")
	}
	if !validate.Count(req.Count) {
		applog.Security(c, "validation.fail", map[string]any{"field": "count", "value": req.Count})
		return jsonError(c, fiber.StatusBadRequest, services.ErrInvalidCount.Error())
	}
	if req.Output != "" {
		name, ok := validate.FileName(req.Output)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "output"})
			return jsonError(c, fiber.StatusBadRequest, services.ErrInvalidOutput.Error())
		}
		req.Output = name
	}

	res, err := h.Datasets.Generate(req)
	switch {
	case errors.Is(err, services.ErrInvalidCount), errors.Is(err, domain.ErrUnknownFormat):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		applog.Error(c, "dataset.create", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not write dataset")
	}
	applog.Audit(c, "dataset.create", map[string]any{"count": res.Count, "files": res.Files})
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Sample returns freshly generated records without writing anything.
func (h *DatasetHandler) Sample(c *fiber.Ctx) error {
	n, ok := validate.CountString(c.Query("count"), 5)
	if !ok || n > MaxSample {
		return jsonError(c, fiber.StatusBadRequest, "count must be between 1 and "+strconv.Itoa(MaxSample))
	}
	var seed uint64
	if s := c.Query("seed"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, "seed must be an unsigned integer")
		}
		seed = v
	}
	return c.JSON(h.Datasets.Generator(seed).Dataset(n, nil))
}
