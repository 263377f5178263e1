package db

import (
	"encoding/json"

	"github.com/palette-dev/palette-picker/internal/models"
	"gorm.io/gorm"
)

// Seed wipes the three tables and loads the default development data:
// one user owning one project with one palette. Children are removed
// before their parents, same order the service itself deletes in.
func Seed(database *gorm.DB) error {
	for _, table := range []string{"palettes", "projects", "users"} {
		if err := database.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	user := models.User{
		Username: "tim_allen",
		Password: "grunt",
	}

	if err := database.Create(&user).Error; err != nil {
		return err
	}

	project := models.Project{
		UserID:      user.ID,
		Name:        "New Project",
		Description: "This is an example description",
	}

	if err := database.Create(&project).Error; err != nil {
		return err
	}

	colors, err := json.Marshal([]string{"#000000", "#888888", "#ffffff"})

	if err != nil {
		return err
	}

	palette := models.Palette{
		ProjectID: project.ID,
		Name:      "Example palette",
		Colors:    colors,
	}

	return database.Create(&palette).Error
}
