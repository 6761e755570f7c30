// controllers/dashboard.go
package controllers

import (
	"net/http"
	"strconv"

	"freelancerdash-backend/storage"
	"freelancerdash-backend/utils"

	"github.com/gin-gonic/gin"
)

const defaultTopClientsLimit = 5

// DashboardController serves the derived analytics endpoints.
type DashboardController struct {
	store storage.Store
}

func NewDashboardController(store storage.Store) *DashboardController {
	return &DashboardController{store: store}
}

// GetStats returns the headline dashboard numbers
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.store.GetDashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTopClients returns clients ranked by paid revenue
func (dc *DashboardController) GetTopClients(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTopClientsLimit)))
	if err != nil || limit < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	clients, err := dc.store.GetTopClientsByRevenue(c.Request.Context(), limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute top clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetMonthlyEarnings returns the fixed Jan-Jun earnings series
func (dc *DashboardController) GetMonthlyEarnings(c *gin.Context) {
	earnings, err := dc.store.GetMonthlyEarnings(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute monthly earnings")
		return
	}
	c.JSON(http.StatusOK, earnings)
}
