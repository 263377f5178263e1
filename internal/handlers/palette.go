package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/palette-dev/palette-picker/internal/models"
)

type CreatePaletteRequest struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

type PaletteRecord struct {
	ID        uint           `json:"id"`
	ProjectID uint           `json:"project_id"`
	Name      string         `json:"name"`
	Colors    datatypes.JSON `json:"colors"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type PaletteHandler struct {
	db *gorm.DB
}

func NewPaletteHandler(db *gorm.DB) *PaletteHandler {
	return &PaletteHandler{db: db}
}

// List returns every palette belonging to any project of the user. An empty
// result is a 200 with an empty array, unlike the project listing.
func (h *PaletteHandler) List(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid user_id."})
		return
	}

	var palettes []models.Palette

	err = h.db.
		Joins("INNER JOIN projects ON projects.id = palettes.project_id AND projects.deleted_at IS NULL").
		Where("projects.user_id = ?", userID).
		Order("palettes.id").
		Find(&palettes).Error

	if err != nil {
		log.WithError(err).Error("failed to list palettes")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	response := make([]PaletteRecord, 0, len(palettes))

	for _, palette := range palettes {
		response = append(response, PaletteRecord{
			ID:        palette.ID,
			ProjectID: palette.ProjectID,
			Name:      palette.Name,
			Colors:    palette.Colors,
			CreatedAt: palette.CreatedAt,
			UpdatedAt: palette.UpdatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// Create inserts a palette under the project. The color list is stored in
// submission order.
func (h *PaletteHandler) Create(ctx *gin.Context) {
	projectID, err := strconv.ParseUint(ctx.Param("project_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid project_id."})
		return
	}

	var body CreatePaletteRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Name == "" || len(body.Colors) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name and colors not included in payload."})
		return
	}

	colors, err := json.Marshal(body.Colors)

	if err != nil {
		log.WithError(err).Error("failed to serialize colors")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	palette := models.Palette{
		ProjectID: uint(projectID),
		Name:      body.Name,
		Colors:    colors,
	}

	if err := h.db.Create(&palette).Error; err != nil {
		log.WithError(err).Error("failed to create palette")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": palette.ID})
}

// Delete removes the palette matching both ids. The response is 202 with the
// palette id whether or not a row matched, as the API has always behaved.
func (h *PaletteHandler) Delete(ctx *gin.Context) {
	projectID, projectErr := strconv.ParseUint(ctx.Param("project_id"), 10, 64)
	paletteID, paletteErr := strconv.ParseUint(ctx.Param("palette_id"), 10, 64)

	if projectErr != nil || paletteErr != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid values within params."})
		return
	}

	err := h.db.Where("id = ? AND project_id = ?", paletteID, projectID).Delete(&models.Palette{}).Error

	if err != nil {
		log.WithError(err).Error("failed to delete palette")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusAccepted, paletteID)
}
