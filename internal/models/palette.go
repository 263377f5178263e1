package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Palette struct {
	gorm.Model

	ProjectID uint           `gorm:"not null;index"`
	Name      string         `gorm:"not null"`
	Colors    datatypes.JSON `gorm:"type:jsonb"` // Ordered list of color strings

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID"`
}
