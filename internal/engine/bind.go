package engine

import (
	"encoding/json"

	"github.com/DoyleJ11/lcu-autopick/internal/session"
	"github.com/DoyleJ11/lcu-autopick/internal/stream"
)

// BindStream registers the engine's handlers on the push-event stream.
// Handlers run on the stream's read loop and only decode + post messages;
// all state lives behind the engine loop.
func (e *Engine) BindStream(s *stream.Stream) {
	s.OnConnect = func() { e.Post(ConnectedMsg{}) }
	s.OnDisconnect = func() { e.Post(DisconnectedMsg{}) }

	s.Register(stream.TopicGameflowPhase, func(ev stream.Event) {
		var phase string
		if err := json.Unmarshal(ev.Data, &phase); err == nil && phase != "" {
			e.Post(PhaseMsg{Raw: phase})
		}
	})

	s.Register(stream.TopicReadyCheck, func(ev stream.Event) {
		var rc struct {
			State          string `json:"state"`
			PlayerResponse string `json:"playerResponse"`
		}
		if err := json.Unmarshal(ev.Data, &rc); err == nil && rc.State != "" {
			e.Post(ReadyCheckMsg{State: rc.State, PlayerResponse: rc.PlayerResponse})
		}
	})

	s.Register(stream.TopicChampSelect, func(ev stream.Event) {
		e.KickSession()
	})

	s.Register(stream.TopicChampSelectTimer, func(ev stream.Event) {
		// Field names differ across client revisions; probe the known
		// spellings. Display only either way.
		var t struct {
			Phase                   string `json:"phase"`
			AdjustedTimeLeftInPhase int64  `json:"adjustedTimeLeftInPhase"`
			TimeLeftInPhase         int64  `json:"timeLeftInPhase"`
			TimeLeftInPhaseInSec    int64  `json:"timeLeftInPhaseInSec"`
		}
		if err := json.Unmarshal(ev.Data, &t); err != nil {
			return
		}
		remaining := t.AdjustedTimeLeftInPhase
		if remaining == 0 {
			remaining = t.TimeLeftInPhase
		}
		if remaining == 0 {
			remaining = t.TimeLeftInPhaseInSec * 1000
		}
		e.Post(TimerMsg{Phase: t.Phase, RemainingMillis: remaining})
	})

	s.Register(stream.TopicChatMe, func(ev stream.Event) {
		var me struct {
			GameName string `json:"gameName"`
			GameTag  string `json:"gameTag"`
			Name     string `json:"name"`
			PUUID    string `json:"puuid"`
		}
		if err := json.Unmarshal(ev.Data, &me); err == nil {
			e.Post(IdentityMsg{Identity: session.Identity{
				GameName:    me.GameName,
				TagLine:     me.GameTag,
				DisplayName: me.Name,
				PUUID:       me.PUUID,
			}})
		}
	})

	s.Register(stream.TopicCurrentSummoner, func(ev stream.Event) {
		var s struct {
			DisplayName string `json:"displayName"`
			GameName    string `json:"gameName"`
			TagLine     string `json:"tagLine"`
			SummonerID  int64  `json:"summonerId"`
			PUUID       string `json:"puuid"`
		}
		if err := json.Unmarshal(ev.Data, &s); err == nil {
			e.Post(IdentityMsg{Identity: session.Identity{
				DisplayName: s.DisplayName,
				GameName:    s.GameName,
				TagLine:     s.TagLine,
				SummonerID:  s.SummonerID,
				PUUID:       s.PUUID,
			}})
		}
	})

	s.Register(stream.TopicLoginSession, func(ev stream.Event) {
		e.Post(RefreshIdentityMsg{})
	})
}
