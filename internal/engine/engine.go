// Package engine is the decision core: it consumes connection/phase/session
// events, inspects the live champ-select session, and issues at most one
// state-changing action per decision, idempotently and rate-limited.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/lcu-autopick/internal/config"
	"github.com/DoyleJ11/lcu-autopick/internal/lcu"
	"github.com/DoyleJ11/lcu-autopick/internal/session"
	"github.com/DoyleJ11/lcu-autopick/internal/types"
)

// riotClient is the capability surface the engine needs from the remote
// session client. A fake implements it in tests.
type riotClient interface {
	GameflowPhase(ctx context.Context) (string, error)
	AcceptReadyCheck(ctx context.Context) error
	ChampSelectSession(ctx context.Context) (*lcu.ChampSelectSession, error)
	HoverChampion(ctx context.Context, actionID, championID int) error
	LockChampion(ctx context.Context, actionID, championID int) error
	CompleteAction(ctx context.Context, actionID int) error
	PickableChampionIDs(ctx context.Context) ([]int, error)
	SetSummonerSpells(ctx context.Context, spell1ID, spell2ID int) error
	RunePages(ctx context.Context) ([]lcu.RunePage, error)
	SetCurrentRunePage(ctx context.Context, pageID int64) error
	PlayAgain(ctx context.Context) error
	CurrentSummoner(ctx context.Context) (*lcu.Summoner, error)
	ChatIdentity(ctx context.Context) (*lcu.ChatMe, error)
}

// resolver is the champion name directory surface.
type resolver interface {
	Resolve(nameOrID string) (int, bool)
	NameFromID(id int) (string, bool)
}

// publisher is the one-way UI notification boundary.
type publisher interface {
	Publish(ev types.Event)
}

// Engine owns SessionState. All mutation happens on the loop goroutine.
type Engine struct {
	log      *zap.Logger
	client   riotClient
	dir      resolver
	notify   publisher
	settings *config.Store

	state     *session.State
	connected bool

	inbox chan Msg
	// sessionKick coalesces champ-select change events: capacity one, so a
	// kick arriving while a tick is pending is dropped, never queued twice.
	sessionKick chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	// Timing knobs, shrunk in tests.
	hoverGap       time.Duration
	actionGap      time.Duration
	lockPause      time.Duration
	gameStartGap   time.Duration
	playAgainDelay time.Duration
	playAgainTries int
}

func New(parent context.Context, client riotClient, dir resolver, notify publisher, settings *config.Store, log *zap.Logger) *Engine {
	e := newEngine(parent, client, dir, notify, settings, log)
	go e.loop()
	return e
}

// newEngine builds the engine without starting the loop, so tests can drive
// handlers synchronously.
func newEngine(parent context.Context, client riotClient, dir resolver, notify publisher, settings *config.Store, log *zap.Logger) *Engine {
	ctx, cancel := context.WithCancel(parent)
	e := &Engine{
		log:      log,
		client:   client,
		dir:      dir,
		notify:   notify,
		settings: settings,

		state:       session.New(),
		inbox:       make(chan Msg, 64),
		sessionKick: make(chan struct{}, 1),
		ctx:         ctx,
		cancel:      cancel,

		hoverGap:       500 * time.Millisecond,
		actionGap:      time.Second,
		lockPause:      50 * time.Millisecond,
		gameStartGap:   30 * time.Second,
		playAgainDelay: 2 * time.Second,
		playAgainTries: 3,
	}
	if r, ok := config.Routing(settings.Current().Region); ok {
		e.state.Platform = r.Platform
		e.state.Region = r.Region
	}
	return e
}

func (e *Engine) Inbox() chan<- Msg { return e.inbox }

// Post delivers a message unless the engine has stopped.
func (e *Engine) Post(m Msg) {
	select {
	case e.inbox <- m:
	case <-e.ctx.Done():
	}
}

// KickSession requests a session tick. A kick already pending absorbs this
// one; a subsequent tick observes the latest remote state anyway.
func (e *Engine) KickSession() {
	select {
	case e.sessionKick <- struct{}{}:
	default:
	}
}

func (e *Engine) Stop() { e.cancel() }

func (e *Engine) loop() {
	for {
		select {
		case <-e.ctx.Done():
			return

		case <-e.sessionKick:
			e.sessionTick()

		case m := <-e.inbox:
			switch msg := m.(type) {
			case PhaseMsg:
				e.handlePhase(msg.Raw)
			case ReadyCheckMsg:
				e.handleReadyCheck(msg)
			case TimerMsg:
				e.log.Debug("champ select timer",
					zap.String("timerPhase", msg.Phase),
					zap.Int64("remainingMs", msg.RemainingMillis))
			case ConnectedMsg:
				e.handleConnected()
			case DisconnectedMsg:
				e.handleDisconnected()
			case IdentityMsg:
				e.mergeIdentity(msg.Identity)
			case RefreshIdentityMsg:
				e.refreshIdentity()
			case StateQuery:
				msg.Reply <- e.snapshot()
			}
		}
	}
}

func (e *Engine) handlePhase(raw string) {
	phase := session.ParsePhase(raw)
	if phase == e.state.CurrentPhase {
		return // self-transitions are not changes
	}
	old := e.state.CurrentPhase
	e.state.CurrentPhase = phase
	e.log.Info("phase change", zap.String("from", string(old)), zap.String("to", string(phase)))
	e.notify.Publish(types.PhaseChange(string(phase)))

	switch {
	case phase == session.PhaseChampSelect:
		e.state.Reset()
		e.sessionTick()

	case phase == session.PhaseGameStart:
		if time.Since(e.state.LastGameStartNotice) >= e.gameStartGap {
			e.state.LastGameStartNotice = time.Now()
			e.notify.Publish(types.Toast("Game is starting"))
		}

	case phase.PostGame() && !old.PostGame():
		// Action flags are NOT reset here; the next ChampSelect entry does
		// that, so a post-game disconnect cannot fake a fresh session.
		if e.settings.Current().PlayAgain {
			go e.playAgainSequence()
		}
	}
}

// handleReadyCheck accepts a found match. Only while queueing-adjacent, only
// when this player has not already answered.
func (e *Engine) handleReadyCheck(msg ReadyCheckMsg) {
	if !e.settings.Current().AutoAccept {
		return
	}
	if msg.State != "InProgress" || msg.PlayerResponse == "Accepted" {
		return
	}
	switch e.state.CurrentPhase {
	case session.PhaseMatchmaking, session.PhaseReadyCheck, session.PhaseNone, session.PhaseLobby:
	default:
		return
	}
	if err := e.client.AcceptReadyCheck(e.ctx); err != nil {
		e.log.Warn("ready check accept failed", zap.Error(err))
		return
	}
	e.notify.Publish(types.Status("Match accepted", "check"))
}

func (e *Engine) handleConnected() {
	e.connected = true
	e.notify.Publish(types.Connected())
	e.refreshIdentity()

	// Catch up on the phase in case we attached mid-game.
	if raw, err := e.client.GameflowPhase(e.ctx); err == nil {
		e.handlePhase(raw)
	}
}

func (e *Engine) handleDisconnected() {
	e.connected = false
	// Deliberately no Reset: a drop mid champ select is not a new game.
	e.state.Identity.Announced = false
	e.notify.Publish(types.Disconnected())
}

func (e *Engine) refreshIdentity() {
	var ident session.Identity
	if me, err := e.client.ChatIdentity(e.ctx); err == nil {
		ident.GameName = me.GameName
		ident.TagLine = me.GameTag
		ident.DisplayName = me.Name
		ident.PUUID = me.PUUID
	}
	if s, err := e.client.CurrentSummoner(e.ctx); err == nil {
		ident.Merge(session.Identity{
			DisplayName: s.DisplayName,
			GameName:    s.GameName,
			TagLine:     s.TagLine,
			SummonerID:  s.SummonerID,
			PUUID:       s.PUUID,
		})
	}
	e.mergeIdentity(ident)
}

func (e *Engine) mergeIdentity(partial session.Identity) {
	changed := e.state.Identity.Merge(partial)
	if !changed && e.state.Identity.Announced {
		return
	}
	riotID := e.riotID()
	if riotID == "" {
		return
	}
	e.state.Identity.Announced = true
	e.notify.Publish(types.IdentityUpdate(riotID))
}

func (e *Engine) riotID() string {
	set := e.settings.Current()
	if set.IdentityOverride != "" {
		return set.IdentityOverride
	}
	return e.state.Identity.RiotID()
}

func (e *Engine) snapshot() types.StatusSnapshot {
	return types.StatusSnapshot{
		Phase:            string(e.state.CurrentPhase),
		RiotID:           e.riotID(),
		Platform:         e.state.Platform,
		Region:           e.state.Region,
		AssignedPosition: e.state.AssignedPosition,
		HasPicked:        e.state.HasPicked,
		HasBanned:        e.state.HasBanned,
		IntentDeclared:   e.state.IntentDeclared,
		Connected:        e.connected,
	}
}

// playAgainSequence runs off the loop; it touches no SessionState and checks
// the remote phase before every attempt so it stops when the player moves on.
func (e *Engine) playAgainSequence() {
	for attempt := 0; attempt < e.playAgainTries; attempt++ {
		select {
		case <-e.ctx.Done():
			return
		case <-time.After(e.playAgainDelay):
		}
		if raw, err := e.client.GameflowPhase(e.ctx); err == nil {
			if !session.ParsePhase(raw).PostGame() {
				return
			}
		}
		if err := e.client.PlayAgain(e.ctx); err != nil {
			e.log.Warn("play again failed", zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}
		e.notify.Publish(types.PlayAgainTriggered())
		return
	}
}
