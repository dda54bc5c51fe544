package repositories

import "appleaday/internal/models"

// EnergyRepository defines the interface for energy-journal data access.
// Entries are not owner-scoped; the journal is a single shared log.
type EnergyRepository interface {
	GetAll() ([]models.Energy, error)
	GetByID(id uint) (*models.Energy, error)
	Create(entry *models.Energy) error
	Update(entry *models.Energy) error
	Delete(id uint) error
}
