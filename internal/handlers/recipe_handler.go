package handlers

import (
	"errors"

	"appleaday/internal/middleware"
	"appleaday/internal/models"
	"appleaday/internal/repositories"
	"appleaday/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RecipeHandler handles HTTP requests for recipes and their tag and
// ingredient sub-resources. All routes require a bearer token; the caller's
// identity scopes every query.
type RecipeHandler struct {
	recipeService *services.RecipeService
	validate      *validator.Validate
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipeService *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the recipe, tag and ingredient routes on an
// already-authenticated router group.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router) {
	recipeRoutes := router.Group("/recipes")
	recipeRoutes.Get("/", h.HandleListRecipes)
	recipeRoutes.Post("/", h.HandleCreateRecipe)
	recipeRoutes.Get("/:id", h.HandleGetRecipe)
	recipeRoutes.Put("/:id", h.HandleReplaceRecipe)
	recipeRoutes.Patch("/:id", h.HandlePatchRecipe)
	recipeRoutes.Delete("/:id", h.HandleDeleteRecipe)

	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleListTags)
	tagRoutes.Patch("/:id", h.HandleUpdateTag)
	tagRoutes.Delete("/:id", h.HandleDeleteTag)

	ingredientRoutes := router.Group("/ingredients")
	ingredientRoutes.Get("/", h.HandleListIngredients)
	ingredientRoutes.Patch("/:id", h.HandleUpdateIngredient)
	ingredientRoutes.Delete("/:id", h.HandleDeleteIngredient)
}

// NameRef is a nested tag or ingredient reference, resolved by name via
// get-or-create under the caller.
type NameRef struct {
	Name string `json:"name" validate:"required,max=255"`
}

// RecipeRequest represents the request body for creating or fully replacing
// a recipe. An owner field in the payload is never read: the caller is the
// owner.
type RecipeRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	TimeMinutes int       `json:"time_minutes" validate:"gte=0"`
	Link        string    `json:"link" validate:"max=255"`
	Tags        []NameRef `json:"tags" validate:"dive"`
	Ingredients []NameRef `json:"ingredients" validate:"dive"`
}

// RecipePatchRequest represents a partial recipe update. A present tags or
// ingredients key, even with an empty list, replaces all associations.
type RecipePatchRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	TimeMinutes *int       `json:"time_minutes" validate:"omitempty,gte=0"`
	Link        *string    `json:"link" validate:"omitempty,max=255"`
	Tags        *[]NameRef `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]NameRef `json:"ingredients" validate:"omitempty,dive"`
}

// RecipeSummary is the list-view serialization. It deliberately omits the
// description to keep list payloads small.
type RecipeSummary struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Link        string              `json:"link"`
	Tags        []models.Tag        `json:"tags"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// RecipeDetail is the single-item serialization, adding the description.
type RecipeDetail struct {
	RecipeSummary
	Description string `json:"description"`
}

func toSummary(r *models.Recipe) RecipeSummary {
	tags := r.Tags
	if tags == nil {
		tags = []models.Tag{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Link:        r.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

func toDetail(r *models.Recipe) RecipeDetail {
	return RecipeDetail{
		RecipeSummary: toSummary(r),
		Description:   r.Description,
	}
}

func names(refs []NameRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Name)
	}
	return out
}

// HandleListRecipes retrieves the caller's recipes, most recent first.
func (h *RecipeHandler) HandleListRecipes(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	recipes, err := h.recipeService.ListRecipes(userID)
	if err != nil {
		logrus.WithError(err).Error("error listing recipes")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve recipes",
		})
	}

	summaries := make([]RecipeSummary, 0, len(recipes))
	for i := range recipes {
		summaries = append(summaries, toSummary(&recipes[i]))
	}
	return c.JSON(summaries)
}

// HandleCreateRecipe creates a recipe owned by the caller, resolving nested
// tags and ingredients by name.
func (h *RecipeHandler) HandleCreateRecipe(c *fiber.Ctx) error {
	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing recipe request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := middleware.UserID(c)
	recipe, err := h.recipeService.CreateRecipe(userID, services.RecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Link:        req.Link,
		Tags:        names(req.Tags),
		Ingredients: names(req.Ingredients),
	})
	if err != nil {
		logrus.WithError(err).Error("error creating recipe")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create recipe",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toDetail(recipe))
}

// HandleGetRecipe retrieves a single recipe with its description.
func (h *RecipeHandler) HandleGetRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	userID := middleware.UserID(c)
	recipe, err := h.recipeService.GetRecipe(userID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error getting recipe %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve recipe",
		})
	}

	return c.JSON(toDetail(recipe))
}

// HandleReplaceRecipe handles PUT: the full payload is validated like a
// create and every field is written.
func (h *RecipeHandler) HandleReplaceRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var req RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing recipe request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	tagNames := names(req.Tags)
	ingredientNames := names(req.Ingredients)
	patch := services.RecipePatch{
		Title:       &req.Title,
		Description: &req.Description,
		TimeMinutes: &req.TimeMinutes,
		Link:        &req.Link,
		Tags:        &tagNames,
		Ingredients: &ingredientNames,
	}

	return h.applyRecipeUpdate(c, id, patch)
}

// HandlePatchRecipe handles PATCH: only the fields present in the payload
// are written.
func (h *RecipeHandler) HandlePatchRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var req RecipePatchRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.WithError(err).Warn("error parsing recipe patch body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	patch := services.RecipePatch{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Link:        req.Link,
	}
	if req.Tags != nil {
		tagNames := names(*req.Tags)
		patch.Tags = &tagNames
	}
	if req.Ingredients != nil {
		ingredientNames := names(*req.Ingredients)
		patch.Ingredients = &ingredientNames
	}

	return h.applyRecipeUpdate(c, id, patch)
}

func (h *RecipeHandler) applyRecipeUpdate(c *fiber.Ctx, id uint, patch services.RecipePatch) error {
	userID := middleware.UserID(c)
	recipe, err := h.recipeService.UpdateRecipe(userID, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error updating recipe %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update recipe",
		})
	}

	return c.JSON(toDetail(recipe))
}

// HandleDeleteRecipe deletes a recipe owned by the caller. A foreign or
// unknown recipe is a plain 404 either way.
func (h *RecipeHandler) HandleDeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	userID := middleware.UserID(c)
	if err := h.recipeService.DeleteRecipe(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error deleting recipe %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete recipe",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListTags retrieves the caller's tags.
func (h *RecipeHandler) HandleListTags(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	tags, err := h.recipeService.ListTags(userID)
	if err != nil {
		logrus.WithError(err).Error("error listing tags")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve tags",
		})
	}
	return c.JSON(tags)
}

// HandleUpdateTag renames a tag owned by the caller.
func (h *RecipeHandler) HandleUpdateTag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var req NameRef
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := middleware.UserID(c)
	tag, err := h.recipeService.UpdateTag(userID, id, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if errors.Is(err, services.ErrNameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"name": err.Error()},
			})
		}
		logrus.WithError(err).Errorf("error updating tag %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update tag",
		})
	}

	return c.JSON(tag)
}

// HandleDeleteTag deletes a tag owned by the caller.
func (h *RecipeHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	userID := middleware.UserID(c)
	if err := h.recipeService.DeleteTag(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error deleting tag %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete tag",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListIngredients retrieves the caller's ingredients.
func (h *RecipeHandler) HandleListIngredients(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	ingredients, err := h.recipeService.ListIngredients(userID)
	if err != nil {
		logrus.WithError(err).Error("error listing ingredients")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve ingredients",
		})
	}
	return c.JSON(ingredients)
}

// HandleUpdateIngredient renames an ingredient owned by the caller.
func (h *RecipeHandler) HandleUpdateIngredient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	var req NameRef
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	userID := middleware.UserID(c)
	ingredient, err := h.recipeService.UpdateIngredient(userID, id, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if errors.Is(err, services.ErrNameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"name": err.Error()},
			})
		}
		logrus.WithError(err).Errorf("error updating ingredient %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update ingredient",
		})
	}

	return c.JSON(ingredient)
}

// HandleDeleteIngredient deletes an ingredient owned by the caller.
func (h *RecipeHandler) HandleDeleteIngredient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}

	userID := middleware.UserID(c)
	if err := h.recipeService.DeleteIngredient(userID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		logrus.WithError(err).Errorf("error deleting ingredient %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete ingredient",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
