// controllers/project.go
package controllers

import (
	"net/http"
	"strconv"

	"freelancerdash-backend/models"
	"freelancerdash-backend/storage"
	"freelancerdash-backend/utils"

	"github.com/gin-gonic/gin"
)

// ProjectController handles the project CRUD endpoints. List and get
// responses carry the client join.
type ProjectController struct {
	store storage.Store
}

func NewProjectController(store storage.Store) *ProjectController {
	return &ProjectController{store: store}
}

// GetProjects retrieves all projects with their clients
func (pc *ProjectController) GetProjects(c *gin.Context) {
	projects, err := pc.store.GetProjects(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject retrieves a specific project by ID
func (pc *ProjectController) GetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := pc.store.GetProject(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if project == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProjectsByClient retrieves the projects belonging to one client
func (pc *ProjectController) GetProjectsByClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	projects, err := pc.store.GetProjectsByClient(c.Request.Context(), clientID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project. The clientId is not checked for
// existence; referential integrity is not the store's job.
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var input models.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	project, err := pc.store.CreateProject(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update to an existing project
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var input models.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	project, err := pc.store.UpdateProject(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if project == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	deleted, err := pc.store.DeleteProject(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
