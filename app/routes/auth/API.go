package auth

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"csc-payments/app/config"
	"csc-payments/app/database"

	"github.com/gofiber/fiber/v2"
)

// LoginAPI logs a student in by registration number. Possession of the reg
// number is the sole factor.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		RegNumber string `json:"reg_number" form:"regNumber"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	req.RegNumber = strings.TrimSpace(req.RegNumber)
	if req.RegNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Registration number is required."})
	}

	student, err := database.GetStudentByRegNumber(config.GetDB(), req.RegNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid registration number."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	sessionID := GenerateSessionID()
	expiresAt := GetSessionExpiry()
	if err := database.CreateSession(config.GetDB(), sessionID, &student.ID, false, expiresAt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	token, err := SignSessionToken(sessionID, expiresAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     StudentCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"student": student,
	})
}

// AdminLoginAPI checks the configured admin credentials and opens an admin
// session.
func AdminLoginAPI(c *fiber.Ctx) error {
	type AdminLoginRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	cfg := config.AppConfig
	if cfg.AdminPasswordHash == "" {
		log.Println("Admin login attempted but ADMIN_PASSWORD_HASH is not set")
		return c.Status(500).JSON(fiber.Map{"error": "Admin login is not configured"})
	}

	if req.Username != cfg.AdminUsername || !CheckPasswordHash(req.Password, cfg.AdminPasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid username or password."})
	}

	sessionID := GenerateSessionID()
	expiresAt := GetSessionExpiry()
	if err := database.CreateSession(config.GetDB(), sessionID, nil, true, expiresAt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	token, err := SignSessionToken(sessionID, expiresAt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     AdminCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"message": "Login successful"})
}

// LogoutAPI deletes any server-side sessions and clears both cookies. API
// callers get a JSON envelope; form posts are redirected to the login page.
func LogoutAPI(c *fiber.Ctx) error {
	for _, name := range []string{StudentCookie, AdminCookie} {
		if tokenString := c.Cookies(name); tokenString != "" {
			if sessionID, err := ParseSessionToken(tokenString); err == nil {
				if err := database.DeleteSession(config.GetDB(), sessionID); err != nil {
					log.Printf("Failed to delete session: %v", err)
				}
			}
		}
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.JSON(fiber.Map{"message": "Logout successful"})
	}
	return c.Redirect("/auth/login")
}
