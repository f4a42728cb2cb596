// Package session holds the in-memory state machine the action engine acts
// on. One State exists per process; Reset substitutes for recreation between
// games. The engine loop is its only writer.
package session

import "time"

type Phase string

const (
	PhaseNone            Phase = "None"
	PhaseLobby           Phase = "Lobby"
	PhaseMatchmaking     Phase = "Matchmaking"
	PhaseReadyCheck      Phase = "ReadyCheck"
	PhaseChampSelect     Phase = "ChampSelect"
	PhaseGameStart       Phase = "GameStart"
	PhaseInProgress      Phase = "InProgress"
	PhaseWaitingForStats Phase = "WaitingForStats"
	PhasePreEndOfGame    Phase = "PreEndOfGame"
	PhaseEndOfGame       Phase = "EndOfGame"
)

// ParsePhase maps the bare remote phase string. Unknown values map to None
// so a client update cannot wedge the machine.
func ParsePhase(raw string) Phase {
	switch Phase(raw) {
	case PhaseLobby, PhaseMatchmaking, PhaseReadyCheck, PhaseChampSelect,
		PhaseGameStart, PhaseInProgress, PhaseWaitingForStats,
		PhasePreEndOfGame, PhaseEndOfGame:
		return Phase(raw)
	default:
		return PhaseNone
	}
}

// PostGame reports whether p is one of the end-of-game phases.
func (p Phase) PostGame() bool {
	switch p {
	case PhaseWaitingForStats, PhasePreEndOfGame, PhaseEndOfGame:
		return true
	}
	return false
}

// Identity is filled in monotonically as sources report; fields are never
// cleared, only Announced is dropped on disconnect.
type Identity struct {
	DisplayName string
	GameName    string
	TagLine     string
	SummonerID  int64
	PUUID       string

	// Announced tracks whether the current identity was reported to the UI;
	// cleared on disconnect so it is re-announced after reconnect.
	Announced bool
}

// RiotID renders the identity for display: "Game Name#TAG" when known,
// falling back to the legacy display name.
func (id Identity) RiotID() string {
	if id.GameName != "" && id.TagLine != "" {
		return id.GameName + "#" + id.TagLine
	}
	return id.DisplayName
}

// Merge fills empty fields from other without clearing anything.
func (id *Identity) Merge(other Identity) (changed bool) {
	if other.DisplayName != "" && id.DisplayName != other.DisplayName {
		id.DisplayName = other.DisplayName
		changed = true
	}
	if other.GameName != "" && id.GameName != other.GameName {
		id.GameName = other.GameName
		changed = true
	}
	if other.TagLine != "" && id.TagLine != other.TagLine {
		id.TagLine = other.TagLine
		changed = true
	}
	if other.SummonerID != 0 && id.SummonerID != other.SummonerID {
		id.SummonerID = other.SummonerID
		changed = true
	}
	if other.PUUID != "" && id.PUUID != other.PUUID {
		id.PUUID = other.PUUID
		changed = true
	}
	return changed
}

// State is the per-process session state.
type State struct {
	CurrentPhase Phase
	Identity     Identity

	Platform string
	Region   string

	AssignedPosition string

	HasPicked      bool
	HasBanned      bool
	IntentDeclared bool

	CompletedActionIDs map[int]bool

	LastActionAttempt   time.Time
	LastIntentAttempt   time.Time
	LastGameStartNotice time.Time
}

func New() *State {
	return &State{
		CurrentPhase:       PhaseNone,
		CompletedActionIDs: map[int]bool{},
	}
}

// Reset clears the per-game action state. Called exactly once per transition
// into ChampSelect; disconnects and post-game phases never reset. Identity
// and routing survive.
func (s *State) Reset() {
	s.AssignedPosition = ""
	s.HasPicked = false
	s.HasBanned = false
	s.IntentDeclared = false
	s.CompletedActionIDs = map[int]bool{}
	s.LastActionAttempt = time.Time{}
	s.LastIntentAttempt = time.Time{}
}
