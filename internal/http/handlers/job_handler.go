package handlers

import (
	"encoding/json"

	applog "productgen/internal/log"
	"productgen/internal/services"
	"productgen/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// JobHandler launches the CSV -> products table import.
type JobHandler struct {
	Import  *services.ImportService
	CSVPath string
}

type runRequest struct {
	Categories []string `json:"categories"`
	Truncate   bool     `json:"truncate"`
}

// Run imports the configured CSV, optionally keeping only some categories
// and emptying the table first. The body is optional.
func (h *JobHandler) Run(c *fiber.Ctx) error {
	var req runRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "body must be a JSON object")
		}
	}
	cats := make([]string, 0, len(req.Categories))
	for _, raw := range req.Categories {
		cat, ok := validate.Category(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "categories"})
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		cats = append(cats, cat)
	}
	if req.Truncate {
		if err := h.Import.Reset(); err != nil {
			applog.Error(c, "job.reset", err, nil)
			return jsonError(c, fiber.StatusInternalServerError, "error running import job")
		}
		applog.Audit(c, "job.reset", nil)
	}
	return h.launch(c, cats)
}

// Launch imports the configured CSV with no filter.
func (h *JobHandler) Launch(c *fiber.Ctx) error {
	return h.launch(c, nil)
}

func (h *JobHandler) launch(c *fiber.Ctx, cats []string) error {
	res, err := h.Import.ImportFile(h.CSVPath, cats)
	if err != nil {
		applog.Error(c, "job.import", err, map[string]any{"csv": h.CSVPath})
		return jsonError(c, fiber.StatusInternalServerError, "error running import job")
	}
	applog.Audit(c, "job.import", map[string]any{"written": res.Written, "skipped": res.Skipped})
	return c.JSON(fiber.Map{"message": "import job completed", "result": res})
}

// RunOnStart imports the configured CSV once, outside any request.
func (h *JobHandler) RunOnStart() (services.ImportResult, error) {
	res, err := h.Import.ImportFile(h.CSVPath, nil)
	if err != nil {
		applog.Error(nil, "job.import.start", err, map[string]any{"csv": h.CSVPath})
		return res, err
	}
	applog.Audit(nil, "job.import.start", map[string]any{"written": res.Written, "stored": res.Stored})
	return res, nil
}
