package repositories

import (
	"errors"
	"fmt"

	"appleaday/internal/models"

	"gorm.io/gorm"
)

// GORMEnergyRepository is a GORM implementation of EnergyRepository.
type GORMEnergyRepository struct {
	db *gorm.DB
}

// NewGORMEnergyRepository creates a new instance of GORMEnergyRepository.
func NewGORMEnergyRepository(db *gorm.DB) *GORMEnergyRepository {
	return &GORMEnergyRepository{
		db: db,
	}
}

// GetAll retrieves all journal entries in insertion order.
func (r *GORMEnergyRepository) GetAll() ([]models.Energy, error) {
	var entries []models.Energy
	if err := r.db.Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all energy entries: %w", err)
	}
	return entries, nil
}

// GetByID retrieves a single journal entry by its ID.
func (r *GORMEnergyRepository) GetByID(id uint) (*models.Energy, error) {
	var entry models.Energy
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get energy entry by ID %d: %w", id, err)
	}
	return &entry, nil
}

// Create creates a new journal entry. DateAdded is assigned by the store.
func (r *GORMEnergyRepository) Create(entry *models.Energy) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create energy entry: %w", err)
	}
	return nil
}

// Update replaces the three ratings of an existing entry. DateAdded is
// immutable after creation, so only the rating columns are written.
func (r *GORMEnergyRepository) Update(entry *models.Energy) error {
	res := r.db.Model(&models.Energy{}).Where("id = ?", entry.ID).Updates(map[string]interface{}{
		"wellbeing":       entry.Wellbeing,
		"mental_stress":   entry.MentalStress,
		"physical_stress": entry.PhysicalStress,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update energy entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a journal entry by its ID.
func (r *GORMEnergyRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Energy{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete energy entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
