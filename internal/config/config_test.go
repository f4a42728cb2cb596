package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouting(t *testing.T) {
	r, ok := Routing("na")
	require.True(t, ok)
	assert.Equal(t, "na1", r.Platform)
	assert.Equal(t, "americas", r.Region)

	r, ok = Routing("EUW")
	require.True(t, ok)
	assert.Equal(t, "euw1", r.Platform)

	// Platform ids pass through.
	r, ok = Routing("kr")
	require.True(t, ok)
	assert.Equal(t, "asia", r.Region)

	_, ok = Routing("atlantis")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "info", HTTPAddr: "127.0.0.1:8777", Region: "na"}
	require.NoError(t, cfg.Validate())

	bad := &Config{LogLevel: "loud", HTTPAddr: "127.0.0.1:8777", Region: "na"}
	assert.Error(t, bad.Validate())

	bad = &Config{LogLevel: "info", HTTPAddr: "", Region: "na"}
	assert.Error(t, bad.Validate())

	bad = &Config{LogLevel: "info", HTTPAddr: "127.0.0.1:8777", Region: "nowhere"}
	assert.Error(t, bad.Validate())
}

func TestStoreReplaceAndCurrent(t *testing.T) {
	st := NewStore(Settings{AutoPick: true, Picks: [3]string{"aatrox", "", ""}})

	got := st.Current()
	assert.True(t, got.AutoPick)
	assert.Equal(t, "aatrox", got.Picks[0])

	st.Replace(Settings{AutoPick: false, Ban: "zed"})
	got = st.Current()
	assert.False(t, got.AutoPick)
	assert.Equal(t, "zed", got.Ban)
}

func TestConfigSettingsProjection(t *testing.T) {
	cfg := &Config{
		AutoAccept: true,
		Pick1:      "aatrox",
		Pick2:      "jinx",
		Ban:        "zed",
		Spell1:     "flash",
		Spell2:     "ignite",
		Region:     "euw",
	}
	s := cfg.Settings()
	assert.True(t, s.AutoAccept)
	assert.Equal(t, [3]string{"aatrox", "jinx", ""}, s.Picks)
	assert.Equal(t, "zed", s.Ban)
	assert.Equal(t, "euw", s.Region)
}
