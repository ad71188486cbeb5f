package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientpulse-backend/models"
	"clientpulse-backend/store"
	"clientpulse-backend/utils"
)

// CreateClientInput defines the expected JSON structure for creating a client.
// Store-managed fields (id, createdAt, lastContactDate) are not bindable and
// are dropped if present in the payload.
type CreateClientInput struct {
	Name           string  `json:"name" binding:"required"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Company        *string `json:"company"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes"`
	TotalPurchases *int    `json:"totalPurchases" binding:"omitempty,gte=0"`
}

type ClientController struct {
	Store store.Store
}

func NewClientController(s store.Store) *ClientController {
	return &ClientController{Store: s}
}

// List returns every client.
func (ctl *ClientController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.GetAllClients())
}

// Get returns a single client by id.
func (ctl *ClientController) Get(c *gin.Context) {
	client, ok := ctl.Store.GetClient(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create validates the payload in full mode, applies defaults and stores a
// new client.
func (ctl *ClientController) Create(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, err)
		return
	}

	client := models.Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Status:  input.Status,
		Notes:   input.Notes,
	}
	if client.Status == "" {
		client.Status = "active"
	}
	if input.TotalPurchases != nil {
		client.TotalPurchases = *input.TotalPurchases
	}

	c.JSON(http.StatusCreated, ctl.Store.CreateClient(client))
}

// Update merges the supplied fields into an existing client.
func (ctl *ClientController) Update(c *gin.Context) {
	var input models.ClientUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, err)
		return
	}

	client, ok := ctl.Store.UpdateClient(c.Param("id"), input)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client and cascades to its follow-ups and interactions.
func (ctl *ClientController) Delete(c *gin.Context) {
	if !ctl.Store.DeleteClient(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}
	c.Status(http.StatusNoContent)
}
