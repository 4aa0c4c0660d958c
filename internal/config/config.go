package config

import (
	"os"

	"casino-blackjack/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Casino Blackjack
type Config struct {
	loaded           bool
	StartingBankroll int `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	MinimumBet       int `yaml:"minimumBet" envconfig:"minimum_bet"`
	// DealDelaySeconds is the pause between draws to mimic a real table
	DealDelaySeconds int  `yaml:"dealDelaySeconds" envconfig:"deal_delay_seconds"`
	DisableColor     bool `yaml:"disableColor" envconfig:"disable_color"`
	Log              struct {
		Level string `yaml:"level" envconfig:"level"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the game runs on defaults plus
// whatever the environment overrides.
func Load() error {
	config = Config{
		StartingBankroll: 100,
		MinimumBet:       1,
		DealDelaySeconds: 1,
	}

	configFile := util.Getenv("CASINO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("casino", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
