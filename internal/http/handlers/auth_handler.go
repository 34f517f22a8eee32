package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pricepeek/internal/domain"
	"pricepeek/internal/log"
	"pricepeek/internal/services"
	"pricepeek/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	username, ok := validate.Username(req.Username)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "username"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid signup fields"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid signup fields"})
	}
	if !validate.Password(req.Password) {
		log.Security(c, "validation.fail", map[string]any{"field": "password"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid signup fields"})
	}

	id, err := h.Auth.Signup(username, email, req.Password)
	if errors.Is(err, domain.ErrConflict) {
		log.Security(c, "auth.signup.conflict", map[string]any{"email": email})
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email or username already taken"})
	}
	if err != nil {
		log.Error(c, "auth.signup.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Signup failed"})
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": email, "user_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	u, err := h.Auth.Login(req.Email, req.Password)
	if errors.Is(err, domain.ErrNotFound) {
		log.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "unknown_email"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		log.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		log.Error(c, "auth.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	// The credential never leaves the service layer.
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    fiber.Map{"id": u.ID, "username": u.Username},
	})
}
