package models

import "time"

// Energy is a single energy-journal entry. All three ratings are on a
// 1 (worst) to 10 (best) scale. Entries carry no owner: the journal is a
// single shared log.
type Energy struct {
	ID             uint      `json:"pk" gorm:"primaryKey"`
	Wellbeing      int       `json:"wellbeing" validate:"required,gte=1,lte=10"`
	MentalStress   int       `json:"mental_stress" validate:"required,gte=1,lte=10"`
	PhysicalStress int       `json:"physical_stress" validate:"required,gte=1,lte=10"`
	DateAdded      time.Time `json:"date_added" gorm:"autoCreateTime"`
}
