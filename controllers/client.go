// controllers/client.go
package controllers

import (
	"net/http"
	"strconv"

	"freelancerdash-backend/models"
	"freelancerdash-backend/storage"
	"freelancerdash-backend/utils"

	"github.com/gin-gonic/gin"
)

// ClientController handles the client CRUD endpoints.
type ClientController struct {
	store storage.Store
}

func NewClientController(store storage.Store) *ClientController {
	return &ClientController{store: store}
}

// GetClients retrieves all clients
func (cc *ClientController) GetClients(c *gin.Context) {
	clients, err := cc.store.GetClients(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client by ID
func (cc *ClientController) GetClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	client, err := cc.store.GetClient(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient creates a new client
func (cc *ClientController) CreateClient(c *gin.Context) {
	var input models.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := cc.store.CreateClient(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient applies a partial update to an existing client
func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	var input models.UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	client, err := cc.store.UpdateClient(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Projects and invoices referencing it are
// kept; their joins resolve to null from now on.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	deleted, err := cc.store.DeleteClient(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
