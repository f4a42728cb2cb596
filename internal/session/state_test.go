package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePhase(t *testing.T) {
	assert.Equal(t, PhaseChampSelect, ParsePhase("ChampSelect"))
	assert.Equal(t, PhaseEndOfGame, ParsePhase("EndOfGame"))
	assert.Equal(t, PhaseNone, ParsePhase("SomethingNew"))
	assert.Equal(t, PhaseNone, ParsePhase(""))
}

func TestPhasePostGame(t *testing.T) {
	assert.True(t, PhaseEndOfGame.PostGame())
	assert.True(t, PhaseWaitingForStats.PostGame())
	assert.True(t, PhasePreEndOfGame.PostGame())
	assert.False(t, PhaseChampSelect.PostGame())
	assert.False(t, PhaseInProgress.PostGame())
}

func TestResetIsolation(t *testing.T) {
	s := New()
	s.HasPicked = true
	s.HasBanned = true
	s.IntentDeclared = true
	s.AssignedPosition = "jungle"
	s.CompletedActionIDs[3] = true
	s.CompletedActionIDs[9] = true
	s.LastActionAttempt = time.Now()
	s.LastIntentAttempt = time.Now()
	s.Identity.GameName = "Tester"
	s.Platform = "na1"

	s.Reset()

	assert.False(t, s.HasPicked)
	assert.False(t, s.HasBanned)
	assert.False(t, s.IntentDeclared)
	assert.Empty(t, s.CompletedActionIDs)
	assert.Empty(t, s.AssignedPosition)
	assert.True(t, s.LastActionAttempt.IsZero())
	assert.True(t, s.LastIntentAttempt.IsZero())

	// Identity and routing survive a reset.
	assert.Equal(t, "Tester", s.Identity.GameName)
	assert.Equal(t, "na1", s.Platform)
}

func TestIdentityMergeIsMonotonic(t *testing.T) {
	var id Identity
	changed := id.Merge(Identity{GameName: "Tester", TagLine: "NA1"})
	assert.True(t, changed)

	// Empty fields never clear existing values.
	changed = id.Merge(Identity{PUUID: "p-1"})
	assert.True(t, changed)
	assert.Equal(t, "Tester", id.GameName)
	assert.Equal(t, "NA1", id.TagLine)

	changed = id.Merge(Identity{})
	assert.False(t, changed)
}

func TestRiotID(t *testing.T) {
	id := Identity{DisplayName: "OldName"}
	assert.Equal(t, "OldName", id.RiotID())

	id.GameName = "Tester"
	id.TagLine = "NA1"
	assert.Equal(t, "Tester#NA1", id.RiotID())
}
