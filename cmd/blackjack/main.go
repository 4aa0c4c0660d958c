package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"casino-blackjack/internal/config"
	"casino-blackjack/internal/console"
	"casino-blackjack/internal/rng"
	"casino-blackjack/pkg/blackjack"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Version is the game version
var Version = "v0.0.0-dev"

var bankroll = flag.Int("bankroll", 0, "override the configured starting bankroll")

func main() {
	flag.Parse()

	// a .env file is optional
	_ = godotenv.Load()

	setupLogger()

	cfg := config.Instance()

	startingBankroll := cfg.StartingBankroll
	if *bankroll > 0 {
		startingBankroll = *bankroll
	}

	game, err := blackjack.NewGame(logrus.StandardLogger(), rng.Crypto{}, blackjack.Options{
		StartingBankroll: startingBankroll,
		MinimumBet:       cfg.MinimumBet,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	logrus.WithFields(logrus.Fields{
		"version":  Version,
		"bankroll": startingBankroll,
	}).Debug("starting session")

	session := console.New(logrus.StandardLogger(), game, os.Stdin, os.Stdout, console.Options{
		DelayBetweenDraws: time.Duration(cfg.DealDelaySeconds) * time.Second,
		DisableColor:      cfg.DisableColor,
	})

	if err := session.Run(); err != nil {
		logrus.WithError(err).Fatal("session failed")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
