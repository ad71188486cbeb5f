package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clientpulse-backend/models"
	"clientpulse-backend/store"
	"clientpulse-backend/utils"
)

// CreateFollowUpInput defines the expected JSON structure for creating a
// follow-up. The clientId is not required to reference an existing client.
type CreateFollowUpInput struct {
	ClientID    string  `json:"clientId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate" binding:"required"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

// UpdateFollowUpInput defines the expected JSON structure for a partial
// follow-up update.
type UpdateFollowUpInput struct {
	ClientID    *string `json:"clientId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type FollowUpController struct {
	Store store.Store
}

func NewFollowUpController(s store.Store) *FollowUpController {
	return &FollowUpController{Store: s}
}

// List returns every follow-up.
func (ctl *FollowUpController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.GetAllFollowUps())
}

// Get returns a single follow-up by id.
func (ctl *FollowUpController) Get(c *gin.Context) {
	followUp, ok := ctl.Store.GetFollowUp(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Follow-up not found")
		return
	}
	c.JSON(http.StatusOK, followUp)
}

// Create validates the payload in full mode, applies defaults and stores a
// new follow-up.
func (ctl *FollowUpController) Create(c *gin.Context) {
	var input CreateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, err)
		return
	}

	dueDate, err := utils.ParseTimestamp(input.DueDate)
	if err != nil {
		utils.RespondWithFieldErrors(c, []utils.FieldError{
			{Field: "dueDate", Message: "must be a valid timestamp"},
		})
		return
	}

	followUp := models.FollowUp{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		Priority:    input.Priority,
		Status:      input.Status,
	}
	if followUp.Priority == "" {
		followUp.Priority = "medium"
	}
	if followUp.Status == "" {
		followUp.Status = "pending"
	}

	c.JSON(http.StatusCreated, ctl.Store.CreateFollowUp(followUp))
}

// Update merges the supplied fields into an existing follow-up.
func (ctl *FollowUpController) Update(c *gin.Context) {
	var input UpdateFollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithValidationErrors(c, err)
		return
	}

	update := models.FollowUpUpdate{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
	}
	if input.DueDate != nil {
		dueDate, err := utils.ParseTimestamp(*input.DueDate)
		if err != nil {
			utils.RespondWithFieldErrors(c, []utils.FieldError{
				{Field: "dueDate", Message: "must be a valid timestamp"},
			})
			return
		}
		update.DueDate = &dueDate
	}

	followUp, ok := ctl.Store.UpdateFollowUp(c.Param("id"), update)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Follow-up not found")
		return
	}
	c.JSON(http.StatusOK, followUp)
}

// Delete removes a follow-up.
func (ctl *FollowUpController) Delete(c *gin.Context) {
	if !ctl.Store.DeleteFollowUp(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Follow-up not found")
		return
	}
	c.Status(http.StatusNoContent)
}
