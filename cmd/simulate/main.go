// Command simulate runs an offline bot-vs-bot match and prints the outcome.
// Useful for balancing the catalog and the escalation pacing without a game
// server.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"bftcg/internal/app"
	"bftcg/internal/bot"
	"bftcg/internal/catalog"
	"bftcg/internal/config"
	"bftcg/internal/domain"
	"bftcg/internal/logging"
	"bftcg/internal/ports"
)

func main() {
	var (
		seed       = flag.Int64("seed", time.Now().UnixNano(), "rng seed for deck building and incident draws")
		rounds     = flag.Int("rounds", 20, "stop after this many completed rounds")
		theme1     = flag.String("theme1", "fire", "deck theme for the first bot (fire, technical, medical)")
		theme2     = flag.String("theme2", "technical", "deck theme for the second bot")
		level      = flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
		configPath = flag.String("config", "", "optional game config JSON path")
	)
	flag.Parse()

	log := logging.NewConsole(os.Stderr, logging.ParseLevel(*level))

	if *configPath != "" {
		if err := config.LoadGameConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	cat := catalog.Default(rng)
	svc := app.NewService(app.NewMemoryStore(), cat, ports.NoopEconomy{}, config.Rules(), log)

	deck1, err := cat.BuildThemeDeck(domain.Theme(*theme1), catalog.DeckSize)
	if err != nil {
		log.Fatal().Err(err).Msg("deck build failed")
	}
	deck2, err := cat.BuildThemeDeck(domain.Theme(*theme2), catalog.DeckSize)
	if err != nil {
		log.Fatal().Err(err).Msg("deck build failed")
	}

	id, _, err := svc.CreateMatch("bot-1", "bot-2", deck1, deck2)
	if err != nil {
		log.Fatal().Err(err).Msg("match creation failed")
	}
	log.Info().Str("match_id", id).Int64("seed", *seed).Msg("simulation started")

	agents := map[string]*bot.Agent{
		"bot-1": bot.New("bot-1", cat),
		"bot-2": bot.New("bot-2", cat),
	}

	ctx := context.Background()
	for {
		view, err := svc.Snapshot(id, "bot-1")
		if err != nil {
			log.Fatal().Err(err).Msg("snapshot failed")
		}
		if view.Status == domain.StatusSharedDefeat || view.Round > *rounds {
			printSummary(view)
			return
		}

		active := view.ActivePlayer
		agent := agents[active]

		own, err := svc.Snapshot(id, active)
		if err != nil {
			log.Fatal().Err(err).Msg("snapshot failed")
		}
		if slot, card, ok := agent.ChooseAssignment(own); ok {
			if _, err := svc.Assign(ctx, id, active, slot, card); err != nil {
				log.Fatal().Err(err).Str("player", active).Str("card", card).Msg("assignment failed")
			}
			log.Debug().Str("player", active).Str("card", card).Int("slot", slot).Msg("assigned")
		}

		events, err := svc.Advance(ctx, id, active)
		if err != nil {
			log.Fatal().Err(err).Str("player", active).Msg("advance failed")
		}
		for _, evt := range events {
			switch evt.Kind {
			case app.EventRoundEnded:
				p := evt.Payload.(app.RoundEndedPayload)
				log.Info().
					Int("round", p.Result.Round).
					Str("winner", p.Result.WinnerID).
					Int("gain", p.Result.Gain).
					Msg("round ended")
			case app.EventSharedDefeat:
				p := evt.Payload.(app.SharedDefeatPayload)
				log.Warn().Int("pressure", p.Pressure).Msg("shared defeat")
			}
		}
	}
}

func printSummary(view app.MatchView) {
	fmt.Printf("rounds played: %d\n", view.Round-1)
	fmt.Printf("status: %s, pressure: %d/%d\n", view.Status, view.Pressure, view.PressureMax)
	fmt.Printf("%s: %d victory points\n", view.You.PlayerID, view.You.Victory)
	fmt.Printf("%s: %d victory points\n", view.Opponent.PlayerID, view.Opponent.Victory)
}
