package repositories

import (
	"errors"
	"fmt"

	"appleaday/internal/models"

	"gorm.io/gorm"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// scoped restricts the query to rows owned by userID.
func (r *GORMRecipeRepository) scoped(userID uint) *gorm.DB {
	return r.db.Where("user_id = ?", userID)
}

// ListByOwner retrieves the user's recipes, most recent first.
func (r *GORMRecipeRepository) ListByOwner(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.scoped(userID).
		Preload("Tags").
		Preload("Ingredients").
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes for user %d: %w", userID, err)
	}
	return recipes, nil
}

// GetByID retrieves a single recipe owned by userID.
func (r *GORMRecipeRepository) GetByID(userID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.scoped(userID).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by ID %d: %w", id, err)
	}
	return &recipe, nil
}

// Create creates a new recipe together with its tag and ingredient
// associations.
func (r *GORMRecipeRepository) Create(recipe *models.Recipe) error {
	if err := r.db.Omit("User").Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// Save persists scalar-field changes to an existing recipe. Associations are
// managed through ReplaceTags/ReplaceIngredients.
func (r *GORMRecipeRepository) Save(recipe *models.Recipe) error {
	res := r.db.Omit("User", "Tags", "Ingredients").Save(recipe)
	if res.Error != nil {
		return fmt.Errorf("failed to update recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a recipe owned by userID. Foreign rows are invisible, so
// deleting another owner's recipe reports not-found.
func (r *GORMRecipeRepository) Delete(userID, id uint) error {
	res := r.scoped(userID).Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceTags clears and rebuilds the recipe's tag associations. The Tag
// rows themselves are left intact.
func (r *GORMRecipeRepository) ReplaceTags(recipe *models.Recipe, tags []models.Tag) error {
	assoc := r.db.Model(recipe).Association("Tags")
	var err error
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(tags)
	}
	if err != nil {
		return fmt.Errorf("failed to replace recipe tags: %w", err)
	}
	recipe.Tags = tags
	return nil
}

// ReplaceIngredients clears and rebuilds the recipe's ingredient
// associations.
func (r *GORMRecipeRepository) ReplaceIngredients(recipe *models.Recipe, ingredients []models.Ingredient) error {
	assoc := r.db.Model(recipe).Association("Ingredients")
	var err error
	if len(ingredients) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(ingredients)
	}
	if err != nil {
		return fmt.Errorf("failed to replace recipe ingredients: %w", err)
	}
	recipe.Ingredients = ingredients
	return nil
}
