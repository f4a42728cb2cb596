package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the startup configuration, parsed from environment variables
// (optionally seeded from a .env file for local runs).
type Config struct {
	AutoAccept bool `env:"AUTO_ACCEPT" envDefault:"true"`
	AutoPick   bool `env:"AUTO_PICK" envDefault:"true"`
	AutoBan    bool `env:"AUTO_BAN" envDefault:"true"`
	AutoSpells bool `env:"AUTO_SPELLS" envDefault:"true"`
	PlayAgain  bool `env:"PLAY_AGAIN" envDefault:"false"`

	Pick1 string `env:"PICK_1"`
	Pick2 string `env:"PICK_2"`
	Pick3 string `env:"PICK_3"`
	Ban   string `env:"BAN_1"`

	Spell1 string `env:"SPELL_1" envDefault:"flash"`
	Spell2 string `env:"SPELL_2" envDefault:"heal"`

	Region string `env:"REGION" envDefault:"na"`

	// IdentityOverride replaces the riot id reported to the UI when set.
	IdentityOverride string `env:"IDENTITY_OVERRIDE"`

	HTTPAddr      string   `env:"HTTP_ADDR" envDefault:"127.0.0.1:8777"`
	LockfilePaths []string `env:"LOCKFILE_PATHS" envSeparator:";"`
	CachePath     string   `env:"CACHE_PATH" envDefault:"champions.db"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error; in normal desktop use everything has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c *Config) Validate() error {
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid LOG_LEVEL %q (must be debug/info/warn/error)", c.LogLevel)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if _, ok := Routing(c.Region); !ok {
		return fmt.Errorf("unknown REGION %q", c.Region)
	}
	return nil
}

// Settings is the runtime-mutable slice of Config the action engine consults
// on every decision point. The UI can change it live via PUT /settings.
type Settings struct {
	AutoAccept bool `json:"autoAccept"`
	AutoPick   bool `json:"autoPick"`
	AutoBan    bool `json:"autoBan"`
	AutoSpells bool `json:"autoSpells"`
	PlayAgain  bool `json:"playAgain"`

	Picks  [3]string `json:"picks"`
	Ban    string    `json:"ban"`
	Spell1 string    `json:"spell1"`
	Spell2 string    `json:"spell2"`

	Region           string `json:"region"`
	IdentityOverride string `json:"identityOverride,omitempty"`
}

func (c *Config) Settings() Settings {
	return Settings{
		AutoAccept: c.AutoAccept,
		AutoPick:   c.AutoPick,
		AutoBan:    c.AutoBan,
		AutoSpells: c.AutoSpells,
		PlayAgain:  c.PlayAgain,
		Picks:      [3]string{c.Pick1, c.Pick2, c.Pick3},
		Ban:        c.Ban,
		Spell1:     c.Spell1,
		Spell2:     c.Spell2,
		Region:     c.Region,

		IdentityOverride: c.IdentityOverride,
	}
}
