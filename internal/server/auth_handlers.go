package server

import (
	"github.com/gofiber/fiber/v2"

	"northgate/internal/models"
	"northgate/internal/validation"
)

// The /api/auth surface only exists in demo mode. With a real database the
// site delegates authentication to its external provider, so these return
// 501 rather than pretending to handle credentials.

func (s *Server) demoAuthOnly(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusNotImplemented,
		&models.AppError{
			Code:    "NOT_IMPLEMENTED",
			Message: "Auth endpoints are only available in demo mode",
		})
}

// AuthSession handles GET /api/auth/session
func (s *Server) AuthSession(c *fiber.Ctx) error {
	if s.demoAuth == nil {
		return s.demoAuthOnly(c)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"session": s.demoAuth.Session(),
	})
}

// AuthCredentials is the demo signup/signin payload.
type AuthCredentials struct {
	Email    string         `json:"email" validate:"required,email,max=254"`
	Password string         `json:"password" validate:"required,min=6,max=72"`
	Metadata map[string]any `json:"metadata"`
}

// AuthSignUp handles POST /api/auth/signup
func (s *Server) AuthSignUp(c *fiber.Ctx) error {
	if s.demoAuth == nil {
		return s.demoAuthOnly(c)
	}

	var req AuthCredentials
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	session, err := s.demoAuth.SignUp(req.Email, req.Password, req.Metadata)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusConflict, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"session": session})
}

// AuthSignIn handles POST /api/auth/signin
func (s *Server) AuthSignIn(c *fiber.Ctx) error {
	if s.demoAuth == nil {
		return s.demoAuthOnly(c)
	}

	var req AuthCredentials
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	session, err := s.demoAuth.SignInWithPassword(req.Email, req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"session": session})
}

// AuthOAuth handles POST /api/auth/oauth
func (s *Server) AuthOAuth(c *fiber.Ctx) error {
	if s.demoAuth == nil {
		return s.demoAuthOnly(c)
	}

	err := s.demoAuth.SignInWithOAuth()
	return models.RespondWithError(c, fiber.StatusNotImplemented, err)
}

// AuthSignOut handles POST /api/auth/signout
func (s *Server) AuthSignOut(c *fiber.Ctx) error {
	if s.demoAuth == nil {
		return s.demoAuthOnly(c)
	}

	s.demoAuth.SignOut()
	return respondData(c, fiber.StatusOK, fiber.Map{"signed_out": true})
}
