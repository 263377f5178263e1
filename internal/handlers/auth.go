package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palette-dev/palette-picker/internal/models"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

// Login matches the submitted username/password pair against the stored row.
// Credentials are compared as-is; the matched record is returned in full.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var body CredentialsRequest

	// An unreadable body and an absent field are the same contract violation.
	_ = ctx.ShouldBindJSON(&body)

	if body.Username == "" || body.Password == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username or Password not present in payload"})
		return
	}

	var user models.User

	err := h.db.Where("username = ? AND password = ?", body.Username, body.Password).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect Username or Password."})
			return
		}

		log.WithError(err).Error("failed to look up user for login")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusOK, UserRecord{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
	})
}

// Register creates a user after checking the username is not already taken.
// Uniqueness is a pre-insert lookup, not a database constraint.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var body CredentialsRequest

	_ = ctx.ShouldBindJSON(&body)

	if body.Username == "" || body.Password == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username or Password not present in payload"})
		return
	}

	var existingUser models.User

	err := h.db.Where("username = ?", body.Username).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Username: %s is already taken.", body.Username)})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithError(err).Error("failed to check existing username")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	user := models.User{
		Username: body.Username,
		Password: body.Password,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.WithError(err).Error("failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": user.ID})
}
