package models

// Tag labels recipes. Names are unique per owner; recipe payloads referring
// to a tag by name reuse the existing row (get-or-create).
type Tag struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"-" gorm:"uniqueIndex:idx_tags_owner_name;not null"`
	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name   string `json:"name" gorm:"uniqueIndex:idx_tags_owner_name;type:varchar(255)" validate:"required,max=255"`
}
