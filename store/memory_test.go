package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientpulse-backend/models"
)

// newTestStore returns a store with sequential ids and a clock that advances
// one second per call, so createdAt values are distinct and reproducible.
func newTestStore() *MemoryStore {
	seq := 0
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewMemoryStore(
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
		WithClock(func() time.Time {
			now = now.Add(time.Second)
			return now
		}),
	)
}

func strPtr(s string) *string { return &s }

func TestCreateClientThenGetRoundTrip(t *testing.T) {
	s := newTestStore()

	created := s.CreateClient(models.Client{
		Name:   "Acme",
		Email:  strPtr("hello@acme.test"),
		Status: "active",
	})

	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.LastContactDate)

	got, ok := s.GetClient(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestCreateIgnoresCallerSuppliedIDAndCreatedAt(t *testing.T) {
	s := newTestStore()

	created := s.CreateClient(models.Client{
		ID:        "forged",
		Name:      "Acme",
		CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "id-001", created.ID)
	assert.Equal(t, 2025, created.CreatedAt.Year())
}

func TestGetMissingReturnsFalse(t *testing.T) {
	s := newTestStore()

	_, ok := s.GetClient("nope")
	assert.False(t, ok)
	_, ok = s.GetFollowUp("nope")
	assert.False(t, ok)
	_, ok = s.GetInteraction("nope")
	assert.False(t, ok)
}

func TestGetAllClientsInsertionOrder(t *testing.T) {
	s := newTestStore()

	a := s.CreateClient(models.Client{Name: "A"})
	b := s.CreateClient(models.Client{Name: "B"})
	c := s.CreateClient(models.Client{Name: "C"})

	all := s.GetAllClients()
	require.Len(t, all, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestUpdateClientMergesOnlySuppliedFields(t *testing.T) {
	s := newTestStore()
	created := s.CreateClient(models.Client{
		Name:   "Acme",
		Email:  strPtr("hello@acme.test"),
		Status: "active",
	})

	updated, ok := s.UpdateClient(created.ID, models.ClientUpdate{Status: strPtr("inactive")})
	require.True(t, ok)

	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateMissingReturnsFalse(t *testing.T) {
	s := newTestStore()

	_, ok := s.UpdateClient("nope", models.ClientUpdate{Status: strPtr("x")})
	assert.False(t, ok)
	_, ok = s.UpdateFollowUp("nope", models.FollowUpUpdate{Status: strPtr("x")})
	assert.False(t, ok)
}

func TestDeleteClientCascades(t *testing.T) {
	s := newTestStore()
	client := s.CreateClient(models.Client{Name: "Acme"})
	other := s.CreateClient(models.Client{Name: "Bystander"})

	mine := s.CreateFollowUp(models.FollowUp{ClientID: client.ID, Title: "Call", DueDate: time.Now()})
	theirs := s.CreateFollowUp(models.FollowUp{ClientID: other.ID, Title: "Keep", DueDate: time.Now()})
	s.CreateInteraction(models.Interaction{ClientID: client.ID, Type: "call"})

	require.True(t, s.DeleteClient(client.ID))

	_, ok := s.GetClient(client.ID)
	assert.False(t, ok)
	_, ok = s.GetFollowUp(mine.ID)
	assert.False(t, ok)
	assert.Empty(t, s.GetFollowUpsByClient(client.ID))
	assert.Empty(t, s.GetInteractionsByClient(client.ID))

	// unrelated records survive
	_, ok = s.GetFollowUp(theirs.ID)
	assert.True(t, ok)
	_, ok = s.GetClient(other.ID)
	assert.True(t, ok)
}

func TestDeleteMissingReturnsFalse(t *testing.T) {
	s := newTestStore()

	assert.False(t, s.DeleteClient("nope"))
	assert.False(t, s.DeleteFollowUp("nope"))
	assert.False(t, s.DeleteInteraction("nope"))
}

func TestPartialFollowUpUpdateKeepsOtherFields(t *testing.T) {
	s := newTestStore()
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	created := s.CreateFollowUp(models.FollowUp{
		ClientID: "c1",
		Title:    "Call back",
		DueDate:  due,
		Priority: "medium",
		Status:   "pending",
	})

	updated, ok := s.UpdateFollowUp(created.ID, models.FollowUpUpdate{Status: strPtr("done")})
	require.True(t, ok)

	assert.Equal(t, "done", updated.Status)
	assert.Equal(t, "Call back", updated.Title)
	assert.Equal(t, due, updated.DueDate)
	assert.Equal(t, "medium", updated.Priority)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestCreateInteractionTouchesClient(t *testing.T) {
	s := newTestStore()
	client := s.CreateClient(models.Client{Name: "Acme"})

	interaction := s.CreateInteraction(models.Interaction{ClientID: client.ID, Type: "call"})

	got, ok := s.GetClient(client.ID)
	require.True(t, ok)
	require.NotNil(t, got.LastContactDate)
	assert.Equal(t, interaction.CreatedAt, *got.LastContactDate)
}

func TestCreateInteractionUnknownClientHasNoSideEffect(t *testing.T) {
	s := newTestStore()
	client := s.CreateClient(models.Client{Name: "Acme"})

	interaction := s.CreateInteraction(models.Interaction{ClientID: "ghost", Type: "call"})

	_, ok := s.GetInteraction(interaction.ID)
	assert.True(t, ok)

	got, _ := s.GetClient(client.ID)
	assert.Nil(t, got.LastContactDate)
}

func TestInteractionsByClientNewestFirst(t *testing.T) {
	s := newTestStore()

	a := s.CreateInteraction(models.Interaction{ClientID: "c1", Type: "call"})
	b := s.CreateInteraction(models.Interaction{ClientID: "c1", Type: "email"})
	s.CreateInteraction(models.Interaction{ClientID: "other", Type: "call"})
	c := s.CreateInteraction(models.Interaction{ClientID: "c1", Type: "meeting"})

	got := s.GetInteractionsByClient("c1")
	require.Len(t, got, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestInteractionsByClientTieBrokenByID(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seq := 0
	s := NewMemoryStore(
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
		WithClock(func() time.Time { return fixed }),
	)

	s.CreateInteraction(models.Interaction{ClientID: "c1", Type: "call"})
	s.CreateInteraction(models.Interaction{ClientID: "c1", Type: "email"})

	got := s.GetInteractionsByClient("c1")
	require.Len(t, got, 2)
	assert.Equal(t, "id-002", got[0].ID)
	assert.Equal(t, "id-001", got[1].ID)
}
