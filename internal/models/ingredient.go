package models

// Ingredient is a named component of recipes, unique per owner like Tag.
type Ingredient struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"-" gorm:"uniqueIndex:idx_ingredients_owner_name;not null"`
	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name   string `json:"name" gorm:"uniqueIndex:idx_ingredients_owner_name;type:varchar(255)" validate:"required,max=255"`
}
