package repositories

import (
	"errors"
	"fmt"

	"appleaday/internal/models"

	"gorm.io/gorm"
)

// GORMIngredientRepository is a GORM implementation of IngredientRepository.
type GORMIngredientRepository struct {
	db *gorm.DB
}

// NewGORMIngredientRepository creates a new instance of GORMIngredientRepository.
func NewGORMIngredientRepository(db *gorm.DB) *GORMIngredientRepository {
	return &GORMIngredientRepository{
		db: db,
	}
}

// ListByOwner retrieves the user's ingredients, descending by name.
func (r *GORMIngredientRepository) ListByOwner(userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("user_id = ?", userID).Order("name DESC").Find(&ingredients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients for user %d: %w", userID, err)
	}
	return ingredients, nil
}

// GetByID retrieves a single ingredient owned by userID.
func (r *GORMIngredientRepository) GetByID(userID, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ?", userID).First(&ingredient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by ID %d: %w", id, err)
	}
	return &ingredient, nil
}

// GetByName retrieves a single ingredient owned by userID with the given
// name.
func (r *GORMIngredientRepository) GetByName(userID uint, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by name %q: %w", name, err)
	}
	return &ingredient, nil
}

// GetOrCreate looks an ingredient up by (owner, name) and inserts it when
// absent.
func (r *GORMIngredientRepository) GetOrCreate(userID uint, name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{UserID: userID, Name: name}
	err := r.db.Omit("User").Where(models.Ingredient{UserID: userID, Name: name}).FirstOrCreate(&ingredient).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get or create ingredient %q: %w", name, err)
	}
	return &ingredient, nil
}

// Save persists changes to an existing ingredient.
func (r *GORMIngredientRepository) Save(ingredient *models.Ingredient) error {
	res := r.db.Omit("User").Save(ingredient)
	if res.Error != nil {
		return fmt.Errorf("failed to update ingredient: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes an ingredient owned by userID.
func (r *GORMIngredientRepository) Delete(userID, id uint) error {
	res := r.db.Where("user_id = ?", userID).Delete(&models.Ingredient{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete ingredient: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
