package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/palette-dev/palette-picker/internal/models"
)

type CreateProjectRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProjectRecord struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectWithPalettes is one row of the aggregate listing query. Palettes
// arrives as the json_agg output and is passed through to the response.
type ProjectWithPalettes struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Palettes    datatypes.JSON `json:"palettes"`
}

type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

// List returns every project of the user together with its palettes, in one
// aggregate query. The inner join means projects without palettes are not
// part of the result.
func (h *ProjectHandler) List(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid user_id."})
		return
	}

	var projects []ProjectWithPalettes

	err = h.db.Raw(`
		SELECT projects.id,
		       projects.name AS title,
		       projects.description,
		       json_agg(
		           json_build_object('id', palettes.id, 'name', palettes.name, 'colors', palettes.colors)
		           ORDER BY palettes.id
		       ) AS palettes
		FROM projects
		INNER JOIN palettes
		        ON palettes.project_id = projects.id
		       AND palettes.deleted_at IS NULL
		WHERE projects.user_id = ?
		  AND projects.deleted_at IS NULL
		GROUP BY projects.id
		ORDER BY projects.id`, userID).Scan(&projects).Error

	if err != nil {
		log.WithError(err).Error("failed to list projects")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if len(projects) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No projects found under user_id."})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// Detail returns the single project matching both the user and project ids.
func (h *ProjectHandler) Detail(ctx *gin.Context) {
	userID, userErr := strconv.ParseUint(ctx.Param("user_id"), 10, 64)
	projectID, projectErr := strconv.ParseUint(ctx.Param("project_id"), 10, 64)

	if userErr != nil || projectErr != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid values within params."})
		return
	}

	var project models.Project

	err := h.db.Where("user_id = ? AND id = ?", userID, projectID).First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid values within params."})
			return
		}

		log.WithError(err).Error("failed to fetch project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusOK, ProjectRecord{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
	})
}

// Create validates the owning user exists and that the name is free for that
// user before inserting. Both checks are lookups, in that order; neither is
// backed by a constraint.
func (h *ProjectHandler) Create(ctx *gin.Context) {
	var body CreateProjectRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.ID == 0 {
		// 404 here, not 422 like the other presence checks.
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User ID not present in payload."})
		return
	}

	var user models.User

	err := h.db.First(&user, body.ID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("%d is NOT a valid user ID.", body.ID)})
			return
		}

		log.WithError(err).Error("failed to check owning user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	var existingProject models.Project

	err = h.db.Where("user_id = ? AND name = ?", body.ID, body.Name).First(&existingProject).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%s already exists. Choose a different name.", body.Name)})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Error("failed to check project name")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	project := models.Project{
		UserID:      body.ID,
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.db.Create(&project).Error; err != nil {
		log.WithError(err).Error("failed to create project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": project.ID})
}

// Update overwrites the project's name and description.
func (h *ProjectHandler) Update(ctx *gin.Context) {
	var body UpdateProjectRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Name == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Project name not found in payload."})
		return
	}

	idParam := ctx.Param("id")
	projectID, err := strconv.ParseUint(idParam, 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Project id: %s not found.", idParam)})
		return
	}

	// Updates via map so an empty description still clears the column.
	result := h.db.Model(&models.Project{}).Where("id = ?", projectID).Updates(map[string]interface{}{
		"name":        body.Name,
		"description": body.Description,
	})

	if result.Error != nil {
		log.WithError(result.Error).Error("failed to update project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Project id: %s not found.", idParam)})
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"id": projectID, "name": body.Name})
}

// Delete removes the project's palettes and then the project itself, inside
// one transaction so a failure cannot leave the cascade half applied.
func (h *ProjectHandler) Delete(ctx *gin.Context) {
	userID, userErr := strconv.ParseUint(ctx.Param("user_id"), 10, 64)
	projectID, projectErr := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if userErr != nil || projectErr != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Invalid values within params."})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Palette{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ? AND user_id = ?", projectID, userID).Delete(&models.Project{}).Error
	})

	if err != nil {
		log.WithError(err).Error("failed to delete project")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusAccepted, projectID)
}
