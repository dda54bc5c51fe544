package models

import "time"

// Recipe is an owner-scoped catalogue entry. The owner is fixed at creation
// and never changed by updates.
type Recipe struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"-" gorm:"index;not null"`
	User        User         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string       `json:"title" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description string       `json:"description"`
	TimeMinutes int          `json:"time_minutes" validate:"gte=0"`
	Link        string       `json:"link" gorm:"type:varchar(255)"`
	Tags        []Tag        `json:"tags" gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:recipe_ingredients;"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}
