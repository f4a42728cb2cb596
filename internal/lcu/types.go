package lcu

// Remote JSON shapes for the client API surface this tool touches. Only the
// fields the engine reads are declared; the service sends far more.

// ReadyCheck is /lol-matchmaking/v1/ready-check.
type ReadyCheck struct {
	State          string `json:"state"` // "InProgress", "EveryoneReady", ...
	PlayerResponse string `json:"playerResponse"`
}

// Action is one pick/ban slot in the champ-select action grid. Never cached
// across ticks; the remote session mutates it concurrently.
type Action struct {
	ID           int    `json:"id"`
	ActorCellID  int    `json:"actorCellId"`
	ChampionID   int    `json:"championId"`
	Type         string `json:"type"` // "pick" | "ban" | "ten_bans_reveal"
	IsInProgress bool   `json:"isInProgress"`
	Completed    bool   `json:"completed"`
}

// TeamMember is a my-team entry in the champ-select session.
type TeamMember struct {
	CellID           int    `json:"cellId"`
	AssignedPosition string `json:"assignedPosition"`
	ChampionID       int    `json:"championId"`
	SummonerID       int64  `json:"summonerId"`
}

// ChampSelectSession is /lol-champ-select/v1/session.
type ChampSelectSession struct {
	LocalPlayerCellID int          `json:"localPlayerCellId"`
	BenchEnabled      bool         `json:"benchEnabled"`
	Actions           [][]Action   `json:"actions"`
	MyTeam            []TeamMember `json:"myTeam"`
	Timer             SessionTimer `json:"timer"`
}

// SessionTimer carries phase timing. Field names vary across client
// revisions, so both spellings are probed; display only.
type SessionTimer struct {
	Phase                   string `json:"phase"`
	AdjustedTimeLeftInPhase int64  `json:"adjustedTimeLeftInPhase"`
	TimeLeftInPhase         int64  `json:"timeLeftInPhase"`
}

// RemainingMillis returns the best available time-left figure.
func (t SessionTimer) RemainingMillis() int64 {
	if t.AdjustedTimeLeftInPhase > 0 {
		return t.AdjustedTimeLeftInPhase
	}
	return t.TimeLeftInPhase
}

// LocalActions returns the incomplete actions owned by the given cell.
func (s *ChampSelectSession) LocalActions() []Action {
	var out []Action
	for _, group := range s.Actions {
		for _, act := range group {
			if act.ActorCellID == s.LocalPlayerCellID && !act.Completed {
				out = append(out, act)
			}
		}
	}
	return out
}

// Summoner is /lol-summoner/v1/current-summoner.
type Summoner struct {
	DisplayName string `json:"displayName"`
	GameName    string `json:"gameName"`
	TagLine     string `json:"tagLine"`
	SummonerID  int64  `json:"summonerId"`
	PUUID       string `json:"puuid"`
}

// ChatMe is /lol-chat/v1/me, the earliest source of the riot id.
type ChatMe struct {
	GameName string `json:"gameName"`
	GameTag  string `json:"gameTag"`
	Name     string `json:"name"`
	PUUID    string `json:"puuid"`
}

// RunePage is one /lol-perks/v1/pages entry.
type RunePage struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsCurrent  bool   `json:"isCurrent"`
	IsEditable bool   `json:"isEditable"`
}
