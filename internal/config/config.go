package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// MatchConfig controls ambient match timing: how long a bot seat waits
// before it's allowed to move, and how long a turn may sit idle before
// the host is expected to force a timeout. The rules engine itself is
// turn-driven and has no clock; these values are for the host adapter.
type MatchConfig struct {
	BotMinDelayMs int `json:"bot_min_delay_ms"`
	BotMaxDelayMs int `json:"bot_max_delay_ms"`
	TurnTimeoutMs int `json:"turn_timeout_ms"`
}

var (
	cfg      *MatchConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadMatchConfig loads the match timing configuration from path.
func LoadMatchConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read match config: %w", err)
			return
		}

		var c MatchConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal match config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetMatchConfig returns the global match timing configuration, or nil
// if LoadMatchConfig has not been called (or failed).
func GetMatchConfig() *MatchConfig {
	return cfg
}
