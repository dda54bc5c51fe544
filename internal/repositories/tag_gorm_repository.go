package repositories

import (
	"errors"
	"fmt"

	"appleaday/internal/models"

	"gorm.io/gorm"
)

// GORMTagRepository is a GORM implementation of TagRepository.
type GORMTagRepository struct {
	db *gorm.DB
}

// NewGORMTagRepository creates a new instance of GORMTagRepository.
func NewGORMTagRepository(db *gorm.DB) *GORMTagRepository {
	return &GORMTagRepository{
		db: db,
	}
}

// ListByOwner retrieves the user's tags, descending by name.
func (r *GORMTagRepository) ListByOwner(userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("user_id = ?", userID).Order("name DESC").Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for user %d: %w", userID, err)
	}
	return tags, nil
}

// GetByID retrieves a single tag owned by userID.
func (r *GORMTagRepository) GetByID(userID, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ?", userID).First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag by ID %d: %w", id, err)
	}
	return &tag, nil
}

// GetByName retrieves a single tag owned by userID with the given name.
func (r *GORMTagRepository) GetByName(userID uint, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag by name %q: %w", name, err)
	}
	return &tag, nil
}

// GetOrCreate looks a tag up by (owner, name) and inserts it when absent.
func (r *GORMTagRepository) GetOrCreate(userID uint, name string) (*models.Tag, error) {
	tag := models.Tag{UserID: userID, Name: name}
	err := r.db.Omit("User").Where(models.Tag{UserID: userID, Name: name}).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	return &tag, nil
}

// Save persists changes to an existing tag.
func (r *GORMTagRepository) Save(tag *models.Tag) error {
	res := r.db.Omit("User").Save(tag)
	if res.Error != nil {
		return fmt.Errorf("failed to update tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a tag owned by userID.
func (r *GORMTagRepository) Delete(userID, id uint) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
