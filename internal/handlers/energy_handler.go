package handlers

import (
	"errors"

	"appleaday/internal/models"
	"appleaday/internal/repositories"
	"appleaday/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// EnergyHandler handles HTTP requests for the energy journal. The journal
// carries no authentication and no owner scoping.
type EnergyHandler struct {
	energyService *services.EnergyService
	validate      *validator.Validate
}

// NewEnergyHandler creates a new EnergyHandler.
func NewEnergyHandler(energyService *services.EnergyService) *EnergyHandler {
	return &EnergyHandler{
		energyService: energyService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the energy-journal routes.
func (h *EnergyHandler) RegisterRoutes(router fiber.Router) {
	energyRoutes := router.Group("/energy-journal")
	energyRoutes.Get("/", h.HandleList)
	energyRoutes.Post("/", h.HandleCreate)
	energyRoutes.Put("/:id", h.HandleUpdate)
	energyRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves every journal entry as a flat list.
func (h *EnergyHandler) HandleList(c *fiber.Ctx) error {
	entries, err := h.energyService.ListEntries()
	if err != nil {
		logrus.WithError(err).Error("error listing energy entries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve entries",
		})
	}
	return c.JSON(entries)
}

// parseEntry binds and validates an energy payload. Each of the three
// ratings must lie in [1,10]; a missing field reads as zero and fails the
// same range check.
func (h *EnergyHandler) parseEntry(c *fiber.Ctx) (*models.Energy, map[string]string, error) {
	var entry models.Energy
	if err := c.BodyParser(&entry); err != nil {
		return nil, nil, err
	}
	entry.ID = 0 // pk is read-only on the wire
	if err := h.validate.Struct(entry); err != nil {
		return nil, validationMessages(err), nil
	}
	return &entry, nil, nil
}

// HandleCreate persists a new journal entry. Success is a bare 201.
func (h *EnergyHandler) HandleCreate(c *fiber.Ctx) error {
	entry, fieldErrors, err := h.parseEntry(c)
	if err != nil {
		logrus.WithError(err).Warn("error parsing energy entry body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	if err := h.energyService.CreateEntry(entry); err != nil {
		logrus.WithError(err).Error("error creating energy entry")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create entry",
		})
	}

	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdate replaces an existing entry's ratings. Success is a bare 204.
func (h *EnergyHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	entry, fieldErrors, err := h.parseEntry(c)
	if err != nil {
		logrus.WithError(err).Warn("error parsing energy entry body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	if err := h.energyService.UpdateEntry(id, entry); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error updating energy entry %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update entry",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete removes a journal entry.
func (h *EnergyHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	if err := h.energyService.DeleteEntry(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error deleting energy entry %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete entry",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
