package store

import "clientpulse-backend/models"

// Store is the persistence boundary consumed by controllers and services.
// Lookups signal a miss with a false second return, never an error; deletes
// report whether anything was removed. The concrete implementation is
// MemoryStore, but the interface allows alternative backends for testing.
type Store interface {
	GetClient(id string) (models.Client, bool)
	GetAllClients() []models.Client
	CreateClient(client models.Client) models.Client
	UpdateClient(id string, update models.ClientUpdate) (models.Client, bool)
	// DeleteClient also removes every follow-up and interaction that
	// references the client.
	DeleteClient(id string) bool

	GetFollowUp(id string) (models.FollowUp, bool)
	GetAllFollowUps() []models.FollowUp
	GetFollowUpsByClient(clientID string) []models.FollowUp
	CreateFollowUp(followUp models.FollowUp) models.FollowUp
	UpdateFollowUp(id string, update models.FollowUpUpdate) (models.FollowUp, bool)
	DeleteFollowUp(id string) bool

	GetInteraction(id string) (models.Interaction, bool)
	GetAllInteractions() []models.Interaction
	// GetInteractionsByClient returns the client's interactions newest
	// first, ties broken by id so the order is reproducible.
	GetInteractionsByClient(clientID string) []models.Interaction
	// CreateInteraction stores the interaction and, when the referenced
	// client exists, sets its lastContactDate to the interaction's
	// createdAt in the same atomic step.
	CreateInteraction(interaction models.Interaction) models.Interaction
	DeleteInteraction(id string) bool
}
