package services

import (
	"errors"

	"appleaday/internal/models"
	"appleaday/internal/repositories"
)

// ErrNameTaken is returned when renaming a tag or ingredient to a name the
// caller already uses for another row.
var ErrNameTaken = errors.New("a row with this name already exists")

// RecipeService handles business logic for recipes and their tag and
// ingredient sub-resources. Every operation is scoped to the calling user.
type RecipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	tagRepo repositories.TagRepository,
	ingredientRepo repositories.IngredientRepository,
) *RecipeService {
	return &RecipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
	}
}

// RecipeInput carries the fields of a recipe create request. Tag and
// ingredient names are resolved via get-or-create under the caller.
type RecipeInput struct {
	Title       string
	Description string
	TimeMinutes int
	Link        string
	Tags        []string
	Ingredients []string
}

// RecipePatch carries the optional fields of a recipe update. A non-nil
// Tags or Ingredients slice (including an empty one) fully replaces the
// recipe's associations.
type RecipePatch struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Link        *string
	Tags        *[]string
	Ingredients *[]string
}

// ListRecipes retrieves the caller's recipes, most recent first.
func (s *RecipeService) ListRecipes(userID uint) ([]models.Recipe, error) {
	return s.recipeRepo.ListByOwner(userID)
}

// GetRecipe retrieves a single recipe owned by the caller.
func (s *RecipeService) GetRecipe(userID, id uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(userID, id)
}

// resolveTags maps tag names to Tag rows under the caller, creating rows
// that do not exist yet. Per-name get-or-create keeps repeats idempotent.
func (s *RecipeService) resolveTags(userID uint, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.GetOrCreate(userID, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

func (s *RecipeService) resolveIngredients(userID uint, names []string) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(names))
	for _, name := range names {
		ingredient, err := s.ingredientRepo.GetOrCreate(userID, name)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, *ingredient)
	}
	return ingredients, nil
}

// CreateRecipe creates a recipe owned by the caller. Ownership comes from
// the authenticated identity; nothing in the payload can change it.
func (s *RecipeService) CreateRecipe(userID uint, input RecipeInput) (*models.Recipe, error) {
	tags, err := s.resolveTags(userID, input.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(userID, input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		TimeMinutes: input.TimeMinutes,
		Link:        input.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe applies a partial update to a recipe owned by the caller.
// When the patch carries a Tags or Ingredients slice the existing
// associations are cleared and rebuilt; the rows themselves survive.
func (s *RecipeService) UpdateRecipe(userID, id uint, patch RecipePatch) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		recipe.Title = *patch.Title
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.TimeMinutes != nil {
		recipe.TimeMinutes = *patch.TimeMinutes
	}
	if patch.Link != nil {
		recipe.Link = *patch.Link
	}

	if err := s.recipeRepo.Save(recipe); err != nil {
		return nil, err
	}

	if patch.Tags != nil {
		tags, err := s.resolveTags(userID, *patch.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepo.ReplaceTags(recipe, tags); err != nil {
			return nil, err
		}
	}
	if patch.Ingredients != nil {
		ingredients, err := s.resolveIngredients(userID, *patch.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepo.ReplaceIngredients(recipe, ingredients); err != nil {
			return nil, err
		}
	}

	return recipe, nil
}

// DeleteRecipe deletes a recipe owned by the caller.
func (s *RecipeService) DeleteRecipe(userID, id uint) error {
	return s.recipeRepo.Delete(userID, id)
}

// ListTags retrieves the caller's tags.
func (s *RecipeService) ListTags(userID uint) ([]models.Tag, error) {
	return s.tagRepo.ListByOwner(userID)
}

// UpdateTag renames a tag owned by the caller. Renaming onto another of the
// caller's tags is rejected rather than left for the unique index.
func (s *RecipeService) UpdateTag(userID, id uint, name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.tagRepo.GetByName(userID, name); err == nil && existing.ID != tag.ID {
		return nil, ErrNameTaken
	}
	tag.Name = name
	if err := s.tagRepo.Save(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag deletes a tag owned by the caller.
func (s *RecipeService) DeleteTag(userID, id uint) error {
	return s.tagRepo.Delete(userID, id)
}

// ListIngredients retrieves the caller's ingredients.
func (s *RecipeService) ListIngredients(userID uint) ([]models.Ingredient, error) {
	return s.ingredientRepo.ListByOwner(userID)
}

// UpdateIngredient renames an ingredient owned by the caller, with the same
// name-collision rule as UpdateTag.
func (s *RecipeService) UpdateIngredient(userID, id uint, name string) (*models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.ingredientRepo.GetByName(userID, name); err == nil && existing.ID != ingredient.ID {
		return nil, ErrNameTaken
	}
	ingredient.Name = name
	if err := s.ingredientRepo.Save(ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient deletes an ingredient owned by the caller.
func (s *RecipeService) DeleteIngredient(userID, id uint) error {
	return s.ingredientRepo.Delete(userID, id)
}
