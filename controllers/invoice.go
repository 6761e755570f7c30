// controllers/invoice.go
package controllers

import (
	"net/http"
	"strconv"

	"freelancerdash-backend/models"
	"freelancerdash-backend/storage"
	"freelancerdash-backend/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceController handles the invoice CRUD endpoints. List and get
// responses carry the client and project joins; the invoice number is
// assigned by the store, never by the caller.
type InvoiceController struct {
	store storage.Store
}

func NewInvoiceController(store storage.Store) *InvoiceController {
	return &InvoiceController{store: store}
}

// GetInvoices retrieves all invoices with their clients and projects
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.store.GetInvoices(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	invoice, err := ic.store.GetInvoice(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if invoice == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// GetInvoicesByClient retrieves the invoices belonging to one client
func (ic *InvoiceController) GetInvoicesByClient(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID")
		return
	}

	invoices, err := ic.store.GetInvoicesByClient(c.Request.Context(), clientID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// CreateInvoice creates a new invoice
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input models.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := ic.store.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice applies a partial update to an existing invoice
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var input models.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := ic.store.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}
	if invoice == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice. Its number is never reissued.
func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	deleted, err := ic.store.DeleteInvoice(c.Request.Context(), id)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	if !deleted {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
