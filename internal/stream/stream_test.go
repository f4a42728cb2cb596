package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseFrame(t *testing.T) {
	raw := []byte(`[8,"OnJsonApiEvent_lol-gameflow_v1_gameflow-phase",{"uri":"/lol-gameflow/v1/gameflow-phase","eventType":"Update","data":"ChampSelect"}]`)
	ev, ok := parseFrame(raw)
	require.True(t, ok)
	assert.Equal(t, TopicGameflowPhase, ev.Topic)
	assert.Equal(t, "Update", ev.EventType)
	assert.Equal(t, "/lol-gameflow/v1/gameflow-phase", ev.URI)
	assert.JSONEq(t, `"ChampSelect"`, string(ev.Data))
}

func TestParseFrameRejectsJunk(t *testing.T) {
	cases := []string{
		``,
		`{}`,
		`[8]`,
		`[3,"topic",{}]`, // wrong opcode
		`["x","topic",{}]`,
		`[8,"topic"]`,
	}
	for _, raw := range cases {
		_, ok := parseFrame([]byte(raw))
		assert.False(t, ok, "frame %q should not parse", raw)
	}
}

func TestDispatchOrderIsRegistrationOrder(t *testing.T) {
	s := New(nil, zap.NewNop())
	var got []string
	s.Register("topic", func(Event) { got = append(got, "first") })
	s.Register("topic", func(Event) { got = append(got, "second") })
	s.Register("other", func(Event) { got = append(got, "other") })

	s.dispatch(Event{Topic: "topic"})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatchUnknownTopicIsNoop(t *testing.T) {
	s := New(nil, zap.NewNop())
	s.Register("topic", func(Event) { t.Fatal("must not fire") })
	s.dispatch(Event{Topic: "unregistered"})
}

func TestTimerEventsAreRateLimited(t *testing.T) {
	s := New(nil, zap.NewNop())
	count := 0
	s.Register(TopicChampSelectTimer, func(Event) { count++ })

	s.dispatch(Event{Topic: TopicChampSelectTimer})
	s.dispatch(Event{Topic: TopicChampSelectTimer})
	assert.Equal(t, 1, count, "second tick inside the window is dropped")

	s.lastTimer = time.Now().Add(-time.Second)
	s.dispatch(Event{Topic: TopicChampSelectTimer})
	assert.Equal(t, 2, count)
}
