package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientpulse-backend/models"
	"clientpulse-backend/store"
	"clientpulse-backend/utils"
)

// CreateInteractionInput defines the expected JSON structure for logging an
// interaction.
type CreateInteractionInput struct {
	ClientID string  `json:"clientId" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Notes    *string `json:"notes"`
}

type InteractionController struct {
	Store store.Store
}

func NewInteractionController(s store.Store) *InteractionController {
	return &InteractionController{Store: s}
}

// List returns every interaction.
func (ctl *InteractionController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.GetAllInteractions())
}

// ListByClient returns a client's interactions, newest first. An unknown
// client yields an empty list, not a 404.
func (ctl *InteractionController) ListByClient(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.GetInteractionsByClient(c.Param("clientId")))
}

// Create logs an interaction; the store stamps the referenced client's
// lastContactDate as part of the same write.
func (ctl *InteractionController) Create(c *gin.Context) {
	var input CreateInteractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, err)
		return
	}

	interaction := models.Interaction{
		ClientID: input.ClientID,
		Type:     input.Type,
		Notes:    input.Notes,
	}
	c.JSON(http.StatusCreated, ctl.Store.CreateInteraction(interaction))
}

// Delete removes an interaction.
func (ctl *InteractionController) Delete(c *gin.Context) {
	if !ctl.Store.DeleteInteraction(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Interaction not found")
		return
	}
	c.Status(http.StatusNoContent)
}
