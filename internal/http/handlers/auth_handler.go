package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	applog "productgen/internal/log"
	"productgen/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate exchanges a username and password for {"jwt": "..."}.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req authRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "body must be a JSON object")
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return jsonError(c, fiber.StatusBadRequest, "username and password are required")
	}

	tok, err := h.Auth.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrBadCreds) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return jsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "auth.login", map[string]any{"username": req.Username})
	return c.JSON(fiber.Map{"jwt": tok})
}
