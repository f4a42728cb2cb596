// Package stream maintains the push-event websocket to the local client and
// dispatches typed events to registered handlers on a single loop.
package stream

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lcu-autopick/internal/lcu"
)

// Event topics this tool subscribes to.
const (
	TopicGameflowPhase    = "OnJsonApiEvent_lol-gameflow_v1_gameflow-phase"
	TopicReadyCheck       = "OnJsonApiEvent_lol-matchmaking_v1_ready-check"
	TopicChampSelect      = "OnJsonApiEvent_lol-champ-select_v1_session"
	TopicChampSelectTimer = "OnJsonApiEvent_lol-champ-select_v1_timer"
	TopicChatMe           = "OnJsonApiEvent_lol-chat_v1_me"
	TopicCurrentSummoner  = "OnJsonApiEvent_lol-summoner_v1_current-summoner"
	TopicLoginSession     = "OnJsonApiEvent_lol-login_v1_session"
)

// wamp opcodes used by the client's push channel.
const (
	opSubscribe = 5
	opEvent     = 8
)

// Timer events arrive faster than anyone needs; dispatch at most one per
// this interval.
const minTimerGap = 200 * time.Millisecond

// Event is one push notification.
type Event struct {
	Topic     string
	URI       string
	EventType string // "Create" | "Update" | "Delete"
	Data      json.RawMessage
}

// Handler processes one event. Handlers run sequentially on the read loop
// and must not block on slow I/O.
type Handler func(Event)

// Stream owns at most one live push connection at a time.
type Stream struct {
	client *lcu.Client
	log    *zap.Logger

	order    []string
	handlers map[string][]Handler

	// OnConnect/OnDisconnect fire on the read loop around each connection's
	// lifetime.
	OnConnect    func()
	OnDisconnect func()

	lastTimer time.Time
}

func New(client *lcu.Client, log *zap.Logger) *Stream {
	return &Stream{
		client:   client,
		log:      log,
		handlers: map[string][]Handler{},
	}
}

// Register appends a handler for a topic. Registration order is dispatch
// order. Not safe to call once Run has started.
func (s *Stream) Register(topic string, h Handler) {
	if _, ok := s.handlers[topic]; !ok {
		s.order = append(s.order, topic)
	}
	s.handlers[topic] = append(s.handlers[topic], h)
}

// Run dials the push channel, subscribes every registered topic, and
// dispatches events until the context is cancelled or the connection drops.
// The returned error is nil only on context cancellation.
func (s *Stream) Run(ctx context.Context) error {
	creds, err := s.client.Credentials()
	if err != nil {
		return err
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	header := http.Header{}
	header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("riot:"+creds.Token)))

	url := fmt.Sprintf("wss://127.0.0.1:%d", creds.Port)
	conn, _, err := websocket.Dial(dialCtx, url, &websocket.DialOptions{
		HTTPHeader:   header,
		HTTPClient:   insecureLoopbackClient(),
		Subprotocols: []string{"wamp"},
	})
	if err != nil {
		return fmt.Errorf("dial push channel: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")
	conn.SetReadLimit(8 << 20) // champ-select sessions are large

	for _, topic := range s.order {
		sub, _ := json.Marshal([]any{opSubscribe, topic})
		writeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := conn.Write(writeCtx, websocket.MessageText, sub)
		cancel()
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}

	s.log.Info("push channel connected")
	if s.OnConnect != nil {
		s.OnConnect()
	}
	defer func() {
		s.log.Info("push channel disconnected")
		if s.OnDisconnect != nil {
			s.OnDisconnect()
		}
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			}
			return fmt.Errorf("read push channel: %w", err)
		}
		if ctx.Err() != nil {
			// Stopped while the read was in flight; discard the result.
			return nil
		}
		if ev, ok := parseFrame(data); ok {
			s.dispatch(ev)
		}
	}
}

func (s *Stream) dispatch(ev Event) {
	if ev.Topic == TopicChampSelectTimer {
		now := time.Now()
		if now.Sub(s.lastTimer) < minTimerGap {
			return
		}
		s.lastTimer = now
	}
	for _, h := range s.handlers[ev.Topic] {
		h(ev)
	}
}

// parseFrame decodes a wamp event frame: [8, topic, {uri, eventType, data}].
func parseFrame(raw []byte) (Event, bool) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 3 {
		return Event{}, false
	}
	var opcode int
	if err := json.Unmarshal(parts[0], &opcode); err != nil || opcode != opEvent {
		return Event{}, false
	}
	var topic string
	if err := json.Unmarshal(parts[1], &topic); err != nil {
		return Event{}, false
	}
	var body struct {
		URI       string          `json:"uri"`
		EventType string          `json:"eventType"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(parts[2], &body); err != nil {
		return Event{}, false
	}
	return Event{Topic: topic, URI: body.URI, EventType: body.EventType, Data: body.Data}, true
}

func insecureLoopbackClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			// Same self-signed loopback cert the REST side talks to.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
}
