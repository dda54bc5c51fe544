package repositories

import "appleaday/internal/models"

// TagRepository defines the interface for tag data access, owner-scoped
// throughout. GetOrCreate is idempotent per (owner, name).
type TagRepository interface {
	ListByOwner(userID uint) ([]models.Tag, error)
	GetByID(userID, id uint) (*models.Tag, error)
	GetByName(userID uint, name string) (*models.Tag, error)
	GetOrCreate(userID uint, name string) (*models.Tag, error)
	Save(tag *models.Tag) error
	Delete(userID, id uint) error
}
