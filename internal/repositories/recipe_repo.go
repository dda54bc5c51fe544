package repositories

import "appleaday/internal/models"

// RecipeRepository defines the interface for recipe data access. Every read
// and mutation is scoped to an owner: rows belonging to other users behave
// as if they do not exist.
type RecipeRepository interface {
	ListByOwner(userID uint) ([]models.Recipe, error)
	GetByID(userID, id uint) (*models.Recipe, error)
	Create(recipe *models.Recipe) error
	Save(recipe *models.Recipe) error
	Delete(userID, id uint) error
	ReplaceTags(recipe *models.Recipe, tags []models.Tag) error
	ReplaceIngredients(recipe *models.Recipe, ingredients []models.Ingredient) error
}
