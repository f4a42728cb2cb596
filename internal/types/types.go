package types

// Event is one message on the one-way UI notification feed.
type Event struct {
	Type     string `json:"type"`
	Message  string `json:"message,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Phase    string `json:"phase,omitempty"`
	RiotID   string `json:"riotId,omitempty"`
	Champion string `json:"champion,omitempty"`
	Spell1   string `json:"spell1,omitempty"`
	Spell2   string `json:"spell2,omitempty"`
}

func Connected() Event    { return Event{Type: "connected"} }
func Disconnected() Event { return Event{Type: "disconnected"} }

func Status(message, icon string) Event {
	return Event{Type: "status", Message: message, Icon: icon}
}

func PhaseChange(phase string) Event { return Event{Type: "phaseChange", Phase: phase} }

func IdentityUpdate(riotID string) Event { return Event{Type: "identityUpdate", RiotID: riotID} }

func ChampionPicked(name string) Event { return Event{Type: "championPicked", Champion: name} }

func ChampionBanned(name string) Event { return Event{Type: "championBanned", Champion: name} }

func SpellsSet(spell1, spell2 string) Event {
	return Event{Type: "spellsSet", Spell1: spell1, Spell2: spell2}
}

func PlayAgainTriggered() Event { return Event{Type: "playAgainTriggered"} }

func Toast(message string) Event { return Event{Type: "toast", Message: message} }

// StatusSnapshot is the GET /status response body.
type StatusSnapshot struct {
	Phase            string `json:"phase"`
	RiotID           string `json:"riotId"`
	Platform         string `json:"platform"`
	Region           string `json:"region"`
	AssignedPosition string `json:"assignedPosition,omitempty"`
	HasPicked        bool   `json:"hasPicked"`
	HasBanned        bool   `json:"hasBanned"`
	IntentDeclared   bool   `json:"intentDeclared"`
	Connected        bool   `json:"connected"`
}
