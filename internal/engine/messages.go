package engine

import (
	"github.com/DoyleJ11/lcu-autopick/internal/session"
	"github.com/DoyleJ11/lcu-autopick/internal/types"
)

// Msg is the engine inbox message set. Everything that touches SessionState
// arrives here and is handled sequentially on the engine loop.
type Msg interface{ isEngineMsg() }

// PhaseMsg carries a raw gameflow phase string.
type PhaseMsg struct{ Raw string }

// ReadyCheckMsg carries the matchmaking ready-check state.
type ReadyCheckMsg struct {
	State          string
	PlayerResponse string
}

// TimerMsg is the advisory champ-select timer tick.
type TimerMsg struct {
	Phase           string
	RemainingMillis int64
}

// ConnectedMsg / DisconnectedMsg mark the push channel lifecycle.
type ConnectedMsg struct{}
type DisconnectedMsg struct{}

// IdentityMsg merges a partial identity observed on the stream.
type IdentityMsg struct{ Identity session.Identity }

// RefreshIdentityMsg asks the engine to re-fetch identity from the remote.
type RefreshIdentityMsg struct{}

// StateQuery reflects loop-owned state without data races.
type StateQuery struct{ Reply chan types.StatusSnapshot }

func (PhaseMsg) isEngineMsg()           {}
func (ReadyCheckMsg) isEngineMsg()      {}
func (TimerMsg) isEngineMsg()           {}
func (ConnectedMsg) isEngineMsg()       {}
func (DisconnectedMsg) isEngineMsg()    {}
func (IdentityMsg) isEngineMsg()        {}
func (RefreshIdentityMsg) isEngineMsg() {}
func (StateQuery) isEngineMsg()         {}
