package repositories

import "appleaday/internal/models"

// IngredientRepository defines the interface for ingredient data access,
// owner-scoped throughout.
type IngredientRepository interface {
	ListByOwner(userID uint) ([]models.Ingredient, error)
	GetByID(userID, id uint) (*models.Ingredient, error)
	GetByName(userID uint, name string) (*models.Ingredient, error)
	GetOrCreate(userID uint, name string) (*models.Ingredient, error)
	Save(ingredient *models.Ingredient) error
	Delete(userID, id uint) error
}
