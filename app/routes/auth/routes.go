package auth

import (
	"strings"

	"csc-payments/app/config"
	"csc-payments/app/database"
	"csc-payments/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	app.Post("/api/auth/login", LoginAPI)
	app.Post("/api/auth/admin/login", AdminLoginAPI)
	app.Post("/api/auth/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if _, err := resolveStudent(c); err == nil {
		return c.Redirect("/dashboard")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - CSC Payments",
	}, "")
}

// resolveStudent loads the student bound to the request's session cookie.
func resolveStudent(c *fiber.Ctx) (*models.Student, error) {
	tokenString := c.Cookies(StudentCookie)
	if tokenString == "" {
		return nil, fiber.ErrUnauthorized
	}

	sessionID, err := ParseSessionToken(tokenString)
	if err != nil {
		return nil, err
	}

	session, err := database.GetSessionByID(config.GetDB(), sessionID)
	if err != nil || session.StudentID == nil {
		return nil, fiber.ErrUnauthorized
	}

	return database.GetStudentByID(config.GetDB(), *session.StudentID)
}

// resolveAdmin reports whether the request carries a valid admin session.
func resolveAdmin(c *fiber.Ctx) bool {
	tokenString := c.Cookies(AdminCookie)
	if tokenString == "" {
		return false
	}

	sessionID, err := ParseSessionToken(tokenString)
	if err != nil {
		return false
	}

	session, err := database.GetSessionByID(config.GetDB(), sessionID)
	return err == nil && session.IsAdmin
}

// StudentAuthMiddleware requires a valid student session. API requests get a
// 401 JSON response; page requests are redirected to the login form.
func StudentAuthMiddleware(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	student, err := resolveStudent(c)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("student", student)
	return c.Next()
}

// AdminAuthMiddleware requires a valid admin session.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if !resolveAdmin(c) {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		return c.Redirect("/admin")
	}

	return c.Next()
}

// CurrentStudent returns the student set by StudentAuthMiddleware.
func CurrentStudent(c *fiber.Ctx) *models.Student {
	student, _ := c.Locals("student").(*models.Student)
	return student
}
