package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"appleaday/internal/models"
	"appleaday/internal/repositories"
	"appleaday/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupRecipeService builds a RecipeService backed by a fresh in-memory
// SQLite database. Association handling is exercised against a real store
// rather than mocks.
func setupRecipeService(t *testing.T) (*services.RecipeService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:recipe_service_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Tag{}, &models.Ingredient{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	recipeService := services.NewRecipeService(
		repositories.NewGORMRecipeRepository(db),
		repositories.NewGORMTagRepository(db),
		repositories.NewGORMIngredientRepository(db),
	)
	return recipeService, db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hashed", IsActive: true}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestRecipeService_CreateRecipe_ResolvesTags(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	recipe, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{
		Title:       "Avocado toast",
		Description: "Quick breakfast",
		TimeMinutes: 5,
		Tags:        []string{"new tag"},
		Ingredients: []string{"Avocado", "Bread"},
	})
	assert.NoError(t, err)
	assert.Equal(t, user.ID, recipe.UserID)
	assert.Len(t, recipe.Tags, 1)
	assert.Equal(t, "new tag", recipe.Tags[0].Name)
	assert.Len(t, recipe.Ingredients, 2)
}

func TestRecipeService_GetOrCreate_ReusesTagRow(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	_, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{
		Title: "First",
		Tags:  []string{"Vegan"},
	})
	assert.NoError(t, err)

	second, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{
		Title: "Second",
		Tags:  []string{"Vegan"},
	})
	assert.NoError(t, err)
	assert.Len(t, second.Tags, 1)

	// Repeating the same name must not duplicate the Tag row.
	var count int64
	db.Model(&models.Tag{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecipeService_TagsScopedPerOwner(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	// Identical names under different owners are distinct rows.
	_, err := recipeService.CreateRecipe(alice.ID, services.RecipeInput{Title: "A", Tags: []string{"Vegan"}})
	assert.NoError(t, err)
	_, err = recipeService.CreateRecipe(bob.ID, services.RecipeInput{Title: "B", Tags: []string{"Vegan"}})
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	assert.Equal(t, int64(2), count)

	aliceTags, err := recipeService.ListTags(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceTags, 1)
}

func TestRecipeService_ListRecipes_OrderAndScope(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	first, err := recipeService.CreateRecipe(alice.ID, services.RecipeInput{Title: "First"})
	assert.NoError(t, err)
	second, err := recipeService.CreateRecipe(alice.ID, services.RecipeInput{Title: "Second"})
	assert.NoError(t, err)
	_, err = recipeService.CreateRecipe(bob.ID, services.RecipeInput{Title: "Foreign"})
	assert.NoError(t, err)

	recipes, err := recipeService.ListRecipes(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, recipes, 2)
	// Most recent first.
	assert.Equal(t, second.ID, recipes[0].ID)
	assert.Equal(t, first.ID, recipes[1].ID)
}

func TestRecipeService_UpdateRecipe_ClearsTags(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	recipe, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{
		Title: "Curry",
		Tags:  []string{"Spicy", "Dinner"},
	})
	assert.NoError(t, err)
	assert.Len(t, recipe.Tags, 2)

	empty := []string{}
	updated, err := recipeService.UpdateRecipe(user.ID, recipe.ID, services.RecipePatch{Tags: &empty})
	assert.NoError(t, err)
	assert.Empty(t, updated.Tags)

	// Associations are gone but the Tag rows themselves survive.
	var count int64
	db.Model(&models.Tag{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestRecipeService_UpdateRecipe_PatchesScalars(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	recipe, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{
		Title:       "Curry",
		Description: "Original description",
		TimeMinutes: 30,
	})
	assert.NoError(t, err)

	newTitle := "Green curry"
	updated, err := recipeService.UpdateRecipe(user.ID, recipe.ID, services.RecipePatch{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "Green curry", updated.Title)
	// Untouched fields keep their values.
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, 30, updated.TimeMinutes)
	// Owner never changes.
	assert.Equal(t, user.ID, updated.UserID)
}

func TestRecipeService_ForeignRecipeIsNotFound(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	recipe, err := recipeService.CreateRecipe(alice.ID, services.RecipeInput{Title: "Private"})
	assert.NoError(t, err)

	_, err = recipeService.GetRecipe(bob.ID, recipe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	title := "Stolen"
	_, err = recipeService.UpdateRecipe(bob.ID, recipe.ID, services.RecipePatch{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = recipeService.DeleteRecipe(bob.ID, recipe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// The owner still sees the untouched recipe.
	got, err := recipeService.GetRecipe(alice.ID, recipe.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Private", got.Title)
}

func TestRecipeService_TagLifecycle(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	_, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{Title: "R", Tags: []string{"After Dinner"}})
	assert.NoError(t, err)

	tags, err := recipeService.ListTags(user.ID)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)

	renamed, err := recipeService.UpdateTag(user.ID, tags[0].ID, "Dessert")
	assert.NoError(t, err)
	assert.Equal(t, "Dessert", renamed.Name)

	// Foreign tags behave as absent.
	_, err = recipeService.UpdateTag(other.ID, tags[0].ID, "Hijack")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, recipeService.DeleteTag(other.ID, tags[0].ID), repositories.ErrNotFound)

	assert.NoError(t, recipeService.DeleteTag(user.ID, tags[0].ID))
	tags, err = recipeService.ListTags(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, tags)
}

func TestRecipeService_ListTags_DescendingName(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	_, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{Title: "R", Tags: []string{"Apple", "Zucchini", "Mango"}})
	assert.NoError(t, err)

	tags, err := recipeService.ListTags(user.ID)
	assert.NoError(t, err)
	assert.Len(t, tags, 3)
	assert.Equal(t, "Zucchini", tags[0].Name)
	assert.Equal(t, "Mango", tags[1].Name)
	assert.Equal(t, "Apple", tags[2].Name)
}

func TestRecipeService_IngredientLifecycle(t *testing.T) {
	recipeService, db := setupRecipeService(t)
	user := createTestUser(t, db, "owner@example.com")

	_, err := recipeService.CreateRecipe(user.ID, services.RecipeInput{Title: "Salad", Ingredients: []string{"Cucumber"}})
	assert.NoError(t, err)

	ingredients, err := recipeService.ListIngredients(user.ID)
	assert.NoError(t, err)
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "Cucumber", ingredients[0].Name)

	renamed, err := recipeService.UpdateIngredient(user.ID, ingredients[0].ID, "Pickle")
	assert.NoError(t, err)
	assert.Equal(t, "Pickle", renamed.Name)

	assert.NoError(t, recipeService.DeleteIngredient(user.ID, ingredients[0].ID))
	ingredients, err = recipeService.ListIngredients(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, ingredients)
}
