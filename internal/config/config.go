package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	Game   GameSettings   `hcl:"game,block"`
	Policy PolicySettings `hcl:"policy,block"`
	UI     UISettings     `hcl:"ui,block"`
}

// GameSettings contains table stakes
type GameSettings struct {
	StartingBank int `hcl:"starting_bank,optional"`
	Ante         int `hcl:"ante,optional"`
}

// PolicySettings tunes the scripted opponent
type PolicySettings struct {
	MinBet                int     `hcl:"min_bet,optional"`
	SpeculativeCallLimit  int     `hcl:"speculative_call_limit,optional"`
	SpeculativeCallChance float64 `hcl:"speculative_call_chance,optional"`
}

// UISettings contains console settings
type UISettings struct {
	Color    bool   `hcl:"color,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// DefaultConfig returns the standard $50 bankroll, $5 ante game
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			StartingBank: 50,
			Ante:         5,
		},
		Policy: PolicySettings{
			MinBet:                2,
			SpeculativeCallLimit:  1,
			SpeculativeCallChance: 0.3,
		},
		UI: UISettings{
			Color:    true,
			LogLevel: "warn",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; a present file has defaults applied to its unset fields.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()

	if cfg.Game.StartingBank == 0 {
		cfg.Game.StartingBank = defaults.Game.StartingBank
	}
	if cfg.Game.Ante == 0 {
		cfg.Game.Ante = defaults.Game.Ante
	}

	if cfg.Policy.MinBet == 0 {
		cfg.Policy.MinBet = defaults.Policy.MinBet
	}
	if cfg.Policy.SpeculativeCallLimit == 0 {
		cfg.Policy.SpeculativeCallLimit = defaults.Policy.SpeculativeCallLimit
	}
	if cfg.Policy.SpeculativeCallChance == 0 {
		cfg.Policy.SpeculativeCallChance = defaults.Policy.SpeculativeCallChance
	}

	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Ante <= 0 {
		return fmt.Errorf("ante must be positive")
	}

	if c.Game.StartingBank < c.Game.Ante {
		return fmt.Errorf("starting bank must cover at least one ante")
	}

	if c.Policy.MinBet <= 0 {
		return fmt.Errorf("minimum bet must be positive")
	}

	if c.Policy.SpeculativeCallLimit < 0 {
		return fmt.Errorf("speculative call limit cannot be negative")
	}

	if c.Policy.SpeculativeCallChance < 0 || c.Policy.SpeculativeCallChance > 1 {
		return fmt.Errorf("speculative call chance must be between 0 and 1")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
