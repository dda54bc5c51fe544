package handlers

import (
	"errors"

	"appleaday/internal/middleware"
	"appleaday/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for user registration, token issuing
// and profile management.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes. The auth middleware is applied
// only to the profile endpoints; create and token are public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/user")
	userRoutes.Post("/create", h.HandleCreate)
	userRoutes.Post("/token", h.HandleToken)
	userRoutes.Get("/me", auth, h.HandleMe)
	userRoutes.Patch("/me", auth, h.HandleUpdateMe)
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name"`
}

// HandleCreate handles new user registration.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing create-user request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Registration failed",
				"errors":  map[string]string{"email": err.Error()},
			})
		}
		logrus.WithError(err).Error("error registering user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// TokenRequest represents the request body for token issuing.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleToken authenticates by email and password and returns a bearer
// token. Any failure yields the same 400 response.
func (h *UserHandler) HandleToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing token request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": services.ErrInvalidCredentials.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// HandleMe returns the authenticated user's profile.
func (h *UserHandler) HandleMe(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	user, err := h.userService.GetProfile(userID)
	if err != nil {
		logrus.WithError(err).Error("error loading profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load profile",
		})
	}
	return c.JSON(user)
}

// UpdateMeRequest represents the request body for a partial profile update.
type UpdateMeRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

// HandleUpdateMe applies a partial update to the authenticated user's
// profile.
func (h *UserHandler) HandleUpdateMe(c *fiber.Ctx) error {
	var req UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing profile update body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := middleware.UserID(c)
	user, err := h.userService.UpdateProfile(userID, services.ProfilePatch{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"email": err.Error()},
			})
		}
		logrus.WithError(err).Error("error updating profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update profile",
		})
	}

	return c.JSON(user)
}
