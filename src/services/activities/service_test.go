package activities

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"mergington-activities/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.RosterEvent
}

func (n *recordingNotifier) RosterChanged(event models.RosterEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry(Seed())

	list := r.List()
	assert.Len(t, list, 9)
	for _, name := range []string{"Basketball Team", "Chess Club", "Robotics Club"} {
		assert.Contains(t, list, name)
	}
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, list["Chess Club"].Participants)

	// snapshot must not alias registry state
	chess := list["Chess Club"]
	chess.Participants[0] = "mallory@mergington.edu"
	list["Chess Club"] = chess
	got, err := r.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", got.Participants[0])
}

func TestRegistrySeedIsNotShared(t *testing.T) {
	seed := Seed()
	r := NewRegistry(seed)
	require.NoError(t, r.Signup("Drama Club", "new@mergington.edu"))
	assert.Len(t, seed["Drama Club"].Participants, 1)
}

func TestRegistrySignup(t *testing.T) {
	t.Run("appends in signup order", func(t *testing.T) {
		r := NewRegistry(Seed())
		require.NoError(t, r.Signup("Tennis Club", "student1@mergington.edu"))
		require.NoError(t, r.Signup("Tennis Club", "student2@mergington.edu"))

		got, err := r.Get("Tennis Club")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"james@mergington.edu",
			"student1@mergington.edu",
			"student2@mergington.edu",
		}, got.Participants)
	})

	t.Run("duplicate is rejected", func(t *testing.T) {
		r := NewRegistry(Seed())
		require.NoError(t, r.Signup("Basketball Team", "test@mergington.edu"))

		err := r.Signup("Basketball Team", "test@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)
		assert.ErrorIs(t, err, ErrValidationConflict)

		got, _ := r.Get("Basketball Team")
		assert.Len(t, got.Participants, 2)
	})

	t.Run("unknown activity", func(t *testing.T) {
		r := NewRegistry(Seed())
		before := r.List()

		err := r.Signup("Nonexistent Activity", "test@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
		assert.NotErrorIs(t, err, ErrValidationConflict)
		assert.Equal(t, before, r.List())
	})

	t.Run("capacity is not enforced", func(t *testing.T) {
		r := NewRegistry(map[string]models.Activity{
			"Tiny Club": {MaxParticipants: 1, Participants: []string{"a@mergington.edu"}},
		})
		assert.NoError(t, r.Signup("Tiny Club", "b@mergington.edu"))
	})
}

func TestRegistryUnregister(t *testing.T) {
	t.Run("removes existing participant", func(t *testing.T) {
		r := NewRegistry(Seed())
		require.NoError(t, r.Unregister("Chess Club", "michael@mergington.edu"))

		got, _ := r.Get("Chess Club")
		assert.Equal(t, []string{"daniel@mergington.edu"}, got.Participants)
	})

	t.Run("not signed up", func(t *testing.T) {
		r := NewRegistry(Seed())
		before := r.List()

		err := r.Unregister("Basketball Team", "notregistered@mergington.edu")
		assert.ErrorIs(t, err, ErrNotSignedUp)
		assert.ErrorIs(t, err, ErrValidationConflict)
		assert.Equal(t, before, r.List())
	})

	t.Run("unknown activity", func(t *testing.T) {
		r := NewRegistry(Seed())
		assert.ErrorIs(t, r.Unregister("Nonexistent Activity", "x@mergington.edu"), ErrActivityNotFound)
	})
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry(Seed())
	before, _ := r.Get("Drama Club")

	require.NoError(t, r.Signup("Drama Club", "integration@mergington.edu"))
	mid, _ := r.Get("Drama Club")
	assert.Len(t, mid.Participants, len(before.Participants)+1)

	require.NoError(t, r.Unregister("Drama Club", "integration@mergington.edu"))
	after, _ := r.Get("Drama Club")
	assert.Equal(t, before, after)
}

func TestRegistryNotifier(t *testing.T) {
	at := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	n := &recordingNotifier{}
	r := NewRegistry(Seed(), WithNotifier(n), WithClock(func() time.Time { return at }))

	require.NoError(t, r.Signup("Art Studio", "mia@mergington.edu"))
	require.Error(t, r.Signup("Art Studio", "mia@mergington.edu"))
	require.NoError(t, r.Unregister("Art Studio", "mia@mergington.edu"))

	require.Len(t, n.events, 2)
	assert.Equal(t, models.RosterEvent{
		Activity: "Art Studio", Email: "mia@mergington.edu",
		Action: models.RosterSignup, Participants: 2, OccurredAt: at,
	}, n.events[0])
	assert.Equal(t, models.RosterUnregister, n.events[1].Action)
	assert.Equal(t, 1, n.events[1].Participants)
}

func TestRegistryConcurrentSignup(t *testing.T) {
	r := NewRegistry(Seed())

	const students = 50
	var wg sync.WaitGroup
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, r.Signup("Gym Class", fmt.Sprintf("student%d@mergington.edu", i)))
		}(i)
	}
	wg.Wait()

	got, _ := r.Get("Gym Class")
	assert.Len(t, got.Participants, students+2)
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry(Seed())
	require.NoError(t, r.Unregister("Debate Team", "noah@mergington.edu"))

	r.Reset(Seed())
	got, _ := r.Get("Debate Team")
	assert.Equal(t, []string{"noah@mergington.edu"}, got.Participants)
	assert.Equal(t, "Art Studio", r.Names()[0])
}
