package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/decred/slog"
	"github.com/joho/godotenv"

	"github.com/cardroom/engine/pkg/history"
	"github.com/cardroom/engine/pkg/poker"
)

func main() {
	var (
		variantName string
		hands       int
		players     int
		buyIn       int64
		sb          int64
		bb          int64
		ante        int64
		seed        int64
		dbPath      string
		envFile     string
		debugLevel  string
	)
	flag.StringVar(&variantName, "variant", "texas-holdem", "Variant: texas-holdem, 2-7-triple-draw, short-deck-holdem, seven-card-stud")
	flag.IntVar(&hands, "hands", 1, "Number of hands to simulate")
	flag.IntVar(&players, "players", 3, "Number of seated players")
	flag.Int64Var(&buyIn, "buyin", 1000, "Starting stack per player")
	flag.Int64Var(&sb, "sb", 10, "Small blind")
	flag.Int64Var(&bb, "bb", 20, "Big blind")
	flag.Int64Var(&ante, "ante", 0, "Ante per seat")
	flag.Int64Var(&seed, "seed", 0, "Deterministic RNG seed (0 = random)")
	flag.StringVar(&dbPath, "db", "", "If set, persist hand histories to this SQLite file")
	flag.StringVar(&envFile, "env", "", "Optional .env file with overrides")
	flag.StringVar(&debugLevel, "debuglevel", "info", "Logging level: trace, debug, info, warn, error")
	flag.Parse()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", envFile, err)
			os.Exit(1)
		}
	}
	// Env overrides for the knobs that matter in scripted runs.
	if env := os.Getenv("DEALSIM_SEED"); env != "" {
		if v, err := strconv.ParseInt(env, 10, 64); err == nil {
			seed = v
		}
	}
	if env := os.Getenv("DEALSIM_VARIANT"); env != "" {
		variantName = env
	}

	backend := slog.NewBackend(os.Stdout)
	log := backend.Logger("SIM")
	if lvl, ok := slog.LevelFromString(debugLevel); ok {
		log.SetLevel(lvl)
	}

	variant, ok := poker.VariantByName(variantName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", variantName)
		os.Exit(1)
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Infof("Simulating %d hand(s) of %s with seed %d", hands, variantName, seed)

	var store *history.Store
	if dbPath != "" {
		var err error
		store, err = history.NewStore(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open history store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	recorder := &poker.Recorder{}
	table, err := poker.NewTable(poker.TableConfig{
		ID:       fmt.Sprintf("sim-%d", seed),
		Log:      log,
		Variant:  variant,
		Stakes:   poker.Stakes{SmallBlind: sb, BigBlind: bb, Ante: ante},
		MaxSeats: players,
		Rng:      rng,
		Sink:     recorder,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create table: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < players; i++ {
		id := fmt.Sprintf("player-%d", i)
		if _, err := table.Sit(id, id, buyIn); err != nil {
			fmt.Fprintf(os.Stderr, "failed to seat %s: %v\n", id, err)
			os.Exit(1)
		}
	}

	for n := 0; n < hands; n++ {
		hand, err := table.StartHand()
		if err != nil {
			log.Errorf("Hand %d not started: %v", n+1, err)
			break
		}
		if err := runHand(table, hand); err != nil {
			log.Errorf("Hand %d failed: %v", n+1, err)
			break
		}
		hist := hand.History()
		log.Infof("Hand %s finished %s, pot %d", hist.HandID, hist.Outcome, hist.PotTotal)
		if store != nil {
			if err := store.SaveHand(hist); err != nil {
				log.Errorf("Failed to persist %s: %v", hist.HandID, err)
			}
		}
	}

	log.Infof("Recorded %d events", len(recorder.Events()))
	for _, ss := range table.Snapshot().Seats {
		if ss.State != poker.SeatEmpty {
			log.Infof("Seat %d (%s): %d chips", ss.Num, ss.Name, ss.Stack)
		}
	}
}

// runHand drives a hand to completion with a call-station policy: stand
// pat on draws, check when free, call otherwise.
func runHand(table *poker.Table, hand *poker.Hand) error {
	for hand.Phase() != poker.PhaseComplete {
		seat := hand.ToAct()
		if seat < 0 {
			return fmt.Errorf("hand stalled in %s", hand.Phase())
		}
		la := hand.LegalActions()
		act := poker.Action{Seat: seat}
		switch {
		case la.Allows(poker.Draw):
			act.Kind = poker.Draw
		case la.Allows(poker.Check):
			act.Kind = poker.Check
		case la.Allows(poker.Call):
			act.Kind = poker.Call
		default:
			act.Kind = poker.Fold
		}
		if err := table.Apply(act); err != nil {
			return err
		}
	}
	return nil
}
