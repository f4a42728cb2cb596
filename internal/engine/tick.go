package engine

import (
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/lcu-autopick/internal/champion"
	"github.com/DoyleJ11/lcu-autopick/internal/config"
	"github.com/DoyleJ11/lcu-autopick/internal/lcu"
	"github.com/DoyleJ11/lcu-autopick/internal/types"
)

const (
	actionTypePick = "pick"
	actionTypeBan  = "ban"
)

// sessionTick runs one pass of the champ-select decision order. Every
// failure path is a no-op for this tick; the next session event retries.
func (e *Engine) sessionTick() {
	set := e.settings.Current()

	sess, err := e.client.ChampSelectSession(e.ctx)
	if err != nil {
		e.log.Debug("champ select session unavailable", zap.Error(err))
		return
	}

	// The pick/ban model does not apply to bench (swap pool) modes.
	if sess.BenchEnabled {
		return
	}
	if sess.LocalPlayerCellID < 0 {
		return
	}

	if e.state.AssignedPosition == "" {
		for _, m := range sess.MyTeam {
			if m.CellID == sess.LocalPlayerCellID && m.AssignedPosition != "" {
				e.state.AssignedPosition = m.AssignedPosition
				e.notify.Publish(types.Status("Assigned position: "+m.AssignedPosition, "position"))
				break
			}
		}
	}

	local := sess.LocalActions()

	e.declareIntent(set, local)

	var active *lcu.Action
	for i := range local {
		if local[i].IsInProgress {
			active = &local[i]
			break
		}
	}
	if active == nil {
		return // nothing lockable this tick
	}

	switch active.Type {
	case actionTypeBan:
		e.runBan(set, active)
	case actionTypePick:
		e.runPick(set, active)
	}
}

// declareIntent hovers the first-priority champion on the pick action
// without locking. Speculative: the remote service or the lock sequence may
// overwrite it, and failures are silently retried next tick.
func (e *Engine) declareIntent(set config.Settings, local []lcu.Action) {
	if !set.AutoPick || set.Picks[0] == "" {
		return
	}
	var pick *lcu.Action
	for i := range local {
		if local[i].Type == actionTypePick {
			pick = &local[i]
			break
		}
	}
	if pick == nil {
		return
	}
	target, ok := e.dir.Resolve(set.Picks[0])
	if !ok || pick.ChampionID == target {
		return
	}
	if time.Since(e.state.LastIntentAttempt) < e.hoverGap {
		return
	}
	e.state.LastIntentAttempt = time.Now()
	if err := e.client.HoverChampion(e.ctx, pick.ID, target); err == nil {
		e.state.IntentDeclared = true
	}
}

func (e *Engine) runBan(set config.Settings, active *lcu.Action) {
	if !set.AutoBan || set.Ban == "" || e.state.HasBanned {
		return
	}
	if e.state.CompletedActionIDs[active.ID] {
		return
	}
	if time.Since(e.state.LastActionAttempt) < e.actionGap {
		return
	}
	e.state.LastActionAttempt = time.Now()

	target, ok := e.dir.Resolve(set.Ban)
	if !ok {
		e.notify.Publish(types.Status("Unknown ban champion: "+set.Ban, "warn"))
		return
	}
	if !e.lockIn(active.ID, target) {
		return
	}
	e.state.HasBanned = true
	e.notify.Publish(types.ChampionBanned(e.championName(target, set.Ban)))
}

func (e *Engine) runPick(set config.Settings, active *lcu.Action) {
	if !set.AutoPick || e.state.HasPicked {
		return
	}
	if e.state.CompletedActionIDs[active.ID] {
		return
	}
	if time.Since(e.state.LastActionAttempt) < e.actionGap {
		return
	}
	e.state.LastActionAttempt = time.Now()

	pickable, perr := e.client.PickableChampionIDs(e.ctx)

	target := 0
	var targetName string
	for _, name := range set.Picks {
		if name == "" {
			continue
		}
		id, ok := e.dir.Resolve(name)
		if !ok {
			continue
		}
		if pickableAllows(pickable, perr != nil, id) {
			target, targetName = id, name
			break
		}
	}
	if target == 0 {
		e.notify.Publish(types.Status("No priority pick available", "warn"))
		return
	}
	if !e.lockIn(active.ID, target) {
		return
	}
	e.state.HasPicked = true
	name := e.championName(target, targetName)
	e.notify.Publish(types.ChampionPicked(name))

	if set.AutoSpells {
		// Off the loop; touches no SessionState.
		go e.assignLoadout(set, name)
	}
}

// pickableAllows treats an empty or failed pickable list as "no restriction
// known" rather than "nothing is pickable": an empty list is
// indistinguishable from a fetch failure, so the engine fails open and lets
// the remote service reject an actually-illegal pick.
func pickableAllows(pickable []int, fetchFailed bool, id int) bool {
	if fetchFailed || len(pickable) == 0 {
		return true
	}
	return slices.Contains(pickable, id)
}

// lockIn runs the shared lock sequence: hover, short pause so the remote
// registers the hover, hover+completed, then the explicit complete call.
// Only the final call is authoritative; the rest are best-effort.
func (e *Engine) lockIn(actionID, championID int) bool {
	if e.state.CompletedActionIDs[actionID] {
		return false
	}
	_ = e.client.HoverChampion(e.ctx, actionID, championID)
	time.Sleep(e.lockPause)
	_ = e.client.LockChampion(e.ctx, actionID, championID)
	if err := e.client.CompleteAction(e.ctx, actionID); err != nil {
		e.log.Warn("action complete failed", zap.Int("actionId", actionID), zap.Error(err))
		return false
	}
	e.state.CompletedActionIDs[actionID] = true
	return true
}

// assignLoadout sets both summoner spells in one call, then opportunistically
// activates a rune page named after the locked champion.
func (e *Engine) assignLoadout(set config.Settings, championName string) {
	spell1 := champion.SpellID(set.Spell1, champion.SpellFlash)
	spell2 := champion.SpellID(set.Spell2, champion.SpellHeal)
	if err := e.client.SetSummonerSpells(e.ctx, spell1, spell2); err != nil {
		e.log.Warn("summoner spell assignment failed", zap.Error(err))
		e.notify.Publish(types.Status("Could not set summoner spells", "warn"))
	} else {
		e.notify.Publish(types.SpellsSet(set.Spell1, set.Spell2))
	}

	pages, err := e.client.RunePages(e.ctx)
	if err != nil {
		return // opportunistic, not an error
	}
	for _, page := range pages {
		if strings.EqualFold(page.Name, championName) {
			if !page.IsCurrent {
				if err := e.client.SetCurrentRunePage(e.ctx, page.ID); err == nil {
					e.notify.Publish(types.Status("Rune page activated: "+page.Name, "runes"))
				}
			}
			return
		}
	}
}

func (e *Engine) championName(id int, configured string) string {
	if name, ok := e.dir.NameFromID(id); ok {
		return name
	}
	return configured
}
