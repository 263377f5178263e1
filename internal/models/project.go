package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string

	// Relationships
	User     User      `gorm:"foreignKey:UserID"`
	Palettes []Palette `gorm:"foreignKey:ProjectID"`
}
