package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"clientpulse-backend/models"
)

// MemoryStore keeps all three collections in process memory behind a single
// lock. Contention is low and critical sections are small, so one store-wide
// mutex keeps the cross-collection writes (cascade delete, interaction
// touch) trivially atomic.
type MemoryStore struct {
	mu sync.RWMutex

	clients      map[string]models.Client
	followUps    map[string]models.FollowUp
	interactions map[string]models.Interaction

	// insertion order per collection, so GetAll is stable
	clientOrder      []string
	followUpOrder    []string
	interactionOrder []string

	newID func() string
	now   func() time.Time
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator replaces the id generator, e.g. with a deterministic one
// in tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *MemoryStore) { s.newID = fn }
}

// WithClock replaces the clock used to stamp createdAt and lastContactDate.
func WithClock(fn func() time.Time) Option {
	return func(s *MemoryStore) { s.now = fn }
}

// NewMemoryStore returns an empty store. By default ids are random UUIDs and
// timestamps come from time.Now.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		clients:      make(map[string]models.Client),
		followUps:    make(map[string]models.FollowUp),
		interactions: make(map[string]models.Interaction),
		newID:        uuid.NewString,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) GetClient(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client, ok := s.clients[id]
	return client, ok
}

func (s *MemoryStore) GetAllClients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, 0, len(s.clientOrder))
	for _, id := range s.clientOrder {
		out = append(out, s.clients[id])
	}
	return out
}

func (s *MemoryStore) CreateClient(client models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	client.ID = s.newID()
	client.CreatedAt = s.now()
	client.LastContactDate = nil
	s.clients[client.ID] = client
	s.clientOrder = append(s.clientOrder, client.ID)
	return client
}

func (s *MemoryStore) UpdateClient(id string, update models.ClientUpdate) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients[id]
	if !ok {
		return models.Client{}, false
	}
	if update.Name != nil {
		client.Name = *update.Name
	}
	if update.Email != nil {
		client.Email = update.Email
	}
	if update.Phone != nil {
		client.Phone = update.Phone
	}
	if update.Company != nil {
		client.Company = update.Company
	}
	if update.Status != nil {
		client.Status = *update.Status
	}
	if update.Notes != nil {
		client.Notes = update.Notes
	}
	if update.TotalPurchases != nil {
		client.TotalPurchases = *update.TotalPurchases
	}
	s.clients[id] = client
	return client, true
}

func (s *MemoryStore) DeleteClient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return false
	}
	delete(s.clients, id)
	s.clientOrder = removeID(s.clientOrder, id)
	for fid, f := range s.followUps {
		if f.ClientID == id {
			delete(s.followUps, fid)
			s.followUpOrder = removeID(s.followUpOrder, fid)
		}
	}
	for iid, in := range s.interactions {
		if in.ClientID == id {
			delete(s.interactions, iid)
			s.interactionOrder = removeID(s.interactionOrder, iid)
		}
	}
	return true
}

func (s *MemoryStore) GetFollowUp(id string) (models.FollowUp, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	followUp, ok := s.followUps[id]
	return followUp, ok
}

func (s *MemoryStore) GetAllFollowUps() []models.FollowUp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FollowUp, 0, len(s.followUpOrder))
	for _, id := range s.followUpOrder {
		out = append(out, s.followUps[id])
	}
	return out
}

func (s *MemoryStore) GetFollowUpsByClient(clientID string) []models.FollowUp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FollowUp, 0)
	for _, id := range s.followUpOrder {
		if f := s.followUps[id]; f.ClientID == clientID {
			out = append(out, f)
		}
	}
	return out
}

func (s *MemoryStore) CreateFollowUp(followUp models.FollowUp) models.FollowUp {
	s.mu.Lock()
	defer s.mu.Unlock()
	followUp.ID = s.newID()
	followUp.CreatedAt = s.now()
	s.followUps[followUp.ID] = followUp
	s.followUpOrder = append(s.followUpOrder, followUp.ID)
	return followUp
}

func (s *MemoryStore) UpdateFollowUp(id string, update models.FollowUpUpdate) (models.FollowUp, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	followUp, ok := s.followUps[id]
	if !ok {
		return models.FollowUp{}, false
	}
	if update.ClientID != nil {
		followUp.ClientID = *update.ClientID
	}
	if update.Title != nil {
		followUp.Title = *update.Title
	}
	if update.Description != nil {
		followUp.Description = update.Description
	}
	if update.DueDate != nil {
		followUp.DueDate = *update.DueDate
	}
	if update.Priority != nil {
		followUp.Priority = *update.Priority
	}
	if update.Status != nil {
		followUp.Status = *update.Status
	}
	s.followUps[id] = followUp
	return followUp, true
}

func (s *MemoryStore) DeleteFollowUp(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.followUps[id]; !ok {
		return false
	}
	delete(s.followUps, id)
	s.followUpOrder = removeID(s.followUpOrder, id)
	return true
}

func (s *MemoryStore) GetInteraction(id string) (models.Interaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	interaction, ok := s.interactions[id]
	return interaction, ok
}

func (s *MemoryStore) GetAllInteractions() []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Interaction, 0, len(s.interactionOrder))
	for _, id := range s.interactionOrder {
		out = append(out, s.interactions[id])
	}
	return out
}

func (s *MemoryStore) GetInteractionsByClient(clientID string) []models.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Interaction, 0)
	for _, id := range s.interactionOrder {
		if in := s.interactions[id]; in.ClientID == clientID {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *MemoryStore) CreateInteraction(interaction models.Interaction) models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	interaction.ID = s.newID()
	now := s.now()
	interaction.CreatedAt = now
	s.interactions[interaction.ID] = interaction
	s.interactionOrder = append(s.interactionOrder, interaction.ID)
	// Touching the client here, under the same lock, keeps the pair atomic
	// for concurrent readers. Unknown clients are tolerated.
	if client, ok := s.clients[interaction.ClientID]; ok {
		touched := now
		client.LastContactDate = &touched
		s.clients[interaction.ClientID] = client
	}
	return interaction
}

func (s *MemoryStore) DeleteInteraction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.interactions[id]; !ok {
		return false
	}
	delete(s.interactions, id)
	s.interactionOrder = removeID(s.interactionOrder, id)
	return true
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
