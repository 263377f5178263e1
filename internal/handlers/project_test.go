package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/palette-dev/palette-picker/internal/models"
	"github.com/palette-dev/palette-picker/internal/router"
	"github.com/palette-dev/palette-picker/internal/testutil"
)

type projectListing struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Palettes    []struct {
		ID     uint     `json:"id"`
		Name   string   `json:"name"`
		Colors []string `json:"colors"`
	} `json:"palettes"`
}

func TestListProjects(t *testing.T) {
	database := testutil.SetupTestDB(t)
	r := router.NewRouter(database)

	user := testutil.CreateTestUser(t, database, "ada", "lovelace")
	other := testutil.CreateTestUser(t, database, "grace", "hopper")

	withPalettes := testutil.CreateTestProject(t, database, user.ID, "Warm Tones", "reds and oranges")
	first := testutil.CreateTestPalette(t, database, withPalettes.ID, "Sunset", []string{"#ff0000", "#ff8800"})
	second := testutil.CreateTestPalette(t, database, withPalettes.ID, "Dawn", []string{"#ffcccc"})

	// Excluded by the inner join.
	testutil.CreateTestProject(t, database, user.ID, "Empty Project", "no palettes yet")

	otherProject := testutil.CreateTestProject(t, database, other.ID, "Cool Tones", "blues")
	testutil.CreateTestPalette(t, database, otherProject.ID, "Ocean", []string{"#0000ff"})

	t.Run("returns projects with their palettes nested", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/projects", user.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)

		var got []projectListing
		testutil.DecodeJSON(t, w, &got)

		require.Len(t, got, 1)
		require.Equal(t, withPalettes.ID, got[0].ID)
		require.Equal(t, "Warm Tones", got[0].Title)
		require.Equal(t, "reds and oranges", got[0].Description)

		require.Len(t, got[0].Palettes, 2)
		require.Equal(t, first.ID, got[0].Palettes[0].ID)
		require.Equal(t, []string{"#ff0000", "#ff8800"}, got[0].Palettes[0].Colors)
		require.Equal(t, second.ID, got[0].Palettes[1].ID)
		require.Equal(t, "Dawn", got[0].Palettes[1].Name)
	})

	t.Run("404 when the user has no projects with palettes", func(t *testing.T) {
		empty := testutil.CreateTestUser(t, database, "charles", "babbage")

		w := testutil.PerformRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/projects", empty.ID), nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "No projects found under user_id."}`, w.Body.String())
	})

	t.Run("404 for a non-numeric user_id", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, "/api/v1/users/not-a-number/projects", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Invalid user_id."}`, w.Body.String())
	})
}

func TestProjectDetail(t *testing.T) {
	database := testutil.SetupTestDB(t)
	r := router.NewRouter(database)

	user := testutil.CreateTestUser(t, database, "ada", "lovelace")
	project := testutil.CreateTestProject(t, database, user.ID, "Warm Tones", "reds and oranges")

	t.Run("returns the matching project", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/projects/%d", user.ID, project.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			ID          uint   `json:"id"`
			UserID      uint   `json:"user_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		testutil.DecodeJSON(t, w, &got)

		require.Equal(t, project.ID, got.ID)
		require.Equal(t, user.ID, got.UserID)
		require.Equal(t, "Warm Tones", got.Name)
		require.Equal(t, "reds and oranges", got.Description)
	})

	t.Run("404 when the project belongs to another user", func(t *testing.T) {
		other := testutil.CreateTestUser(t, database, "grace", "hopper")

		w := testutil.PerformRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/projects/%d", other.ID, project.ID), nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Invalid values within params."}`, w.Body.String())
	})

	t.Run("404 for non-numeric params", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, "/api/v1/users/abc/projects/def", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Invalid values within params."}`, w.Body.String())
	})
}

func TestCreateProject(t *testing.T) {
	database := testutil.SetupTestDB(t)
	r := router.NewRouter(database)

	user := testutil.CreateTestUser(t, database, "ada", "lovelace")

	t.Run("404 when the user id is absent", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/v1/users/projects/new", map[string]string{
			"name": "Warm Tones",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "User ID not present in payload."}`, w.Body.String())
	})

	t.Run("422 when the user id matches nobody", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/v1/users/projects/new", map[string]interface{}{
			"id":   999999,
			"name": "Warm Tones",
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.JSONEq(t, `{"error": "999999 is NOT a valid user ID."}`, w.Body.String())
	})

	t.Run("creates the project", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/v1/users/projects/new", map[string]interface{}{
			"id":          user.ID,
			"name":        "Warm Tones",
			"description": "reds and oranges",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var got struct {
			ID uint `json:"id"`
		}
		testutil.DecodeJSON(t, w, &got)
		require.NotZero(t, got.ID)

		var stored models.Project
		require.NoError(t, database.First(&stored, got.ID).Error)
		require.Equal(t, user.ID, stored.UserID)
		require.Equal(t, "Warm Tones", stored.Name)
	})

	t.Run("409 when the name is taken by the same user", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/v1/users/projects/new", map[string]interface{}{
			"id":   user.ID,
			"name": "Warm Tones",
		})

		require.Equal(t, http.StatusConflict, w.Code)
		require.JSONEq(t, `{"error": "Warm Tones already exists. Choose a different name."}`, w.Body.String())
	})

	t.Run("the same name under another user is fine", func(t *testing.T) {
		other := testutil.CreateTestUser(t, database, "grace", "hopper")

		w := testutil.PerformRequest(t, r, http.MethodPost, "/api/v1/users/projects/new", map[string]interface{}{
			"id":   other.ID,
			"name": "Warm Tones",
		})

		require.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestUpdateProject(t *testing.T) {
	database := testutil.SetupTestDB(t)
	r := router.NewRouter(database)

	user := testutil.CreateTestUser(t, database, "ada", "lovelace")
	project := testutil.CreateTestProject(t, database, user.ID, "Warm Tones", "reds and oranges")

	t.Run("422 without a name", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/users/projects/%d/edit", project.ID), map[string]string{
			"description": "only a description",
		})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.JSONEq(t, `{"error": "Project name not found in payload."}`, w.Body.String())
	})

	t.Run("404 for an unknown id", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPatch, "/api/v1/users/projects/999999/edit", map[string]string{
			"name": "Renamed",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Project id: 999999 not found."}`, w.Body.String())
	})

	t.Run("404 for a non-numeric id", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPatch, "/api/v1/users/projects/oops/edit", map[string]string{
			"name": "Renamed",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Project id: oops not found."}`, w.Body.String())
	})

	t.Run("updates name and description", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/users/projects/%d/edit", project.ID), map[string]string{
			"name":        "Cool Tones",
			"description": "now blues",
		})

		require.Equal(t, http.StatusAccepted, w.Code)

		var got struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}
		testutil.DecodeJSON(t, w, &got)
		require.Equal(t, project.ID, got.ID)
		require.Equal(t, "Cool Tones", got.Name)

		var stored models.Project
		require.NoError(t, database.First(&stored, project.ID).Error)
		require.Equal(t, "Cool Tones", stored.Name)
		require.Equal(t, "now blues", stored.Description)
	})
}

func TestDeleteProject(t *testing.T) {
	database := testutil.SetupTestDB(t)
	r := router.NewRouter(database)

	user := testutil.CreateTestUser(t, database, "ada", "lovelace")

	t.Run("removes palettes before the project", func(t *testing.T) {
		project := testutil.CreateTestProject(t, database, user.ID, "Warm Tones", "reds and oranges")
		testutil.CreateTestPalette(t, database, project.ID, "Sunset", []string{"#ff0000"})
		testutil.CreateTestPalette(t, database, project.ID, "Dawn", []string{"#ffcccc"})

		w := testutil.PerformRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d/projects/%d", user.ID, project.ID), nil)

		require.Equal(t, http.StatusAccepted, w.Code)
		require.Equal(t, fmt.Sprintf("%d", project.ID), w.Body.String())

		var paletteCount int64
		require.NoError(t, database.Model(&models.Palette{}).Where("project_id = ?", project.ID).Count(&paletteCount).Error)
		require.Zero(t, paletteCount)

		err := database.First(&models.Project{}, project.ID).Error
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)

		// The user's palette listing is empty again.
		listing := testutil.PerformRequest(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/palettes", user.ID), nil)
		require.Equal(t, http.StatusOK, listing.Code)
		require.JSONEq(t, `[]`, listing.Body.String())
	})

	t.Run("404 for non-numeric params", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodDelete, "/api/v1/users/abc/projects/def", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"error": "Invalid values within params."}`, w.Body.String())
	})
}
