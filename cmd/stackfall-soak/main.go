package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/game"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece sequence and the random actions.")
	actionsPerTick := flag.Int("actions-per-tick", 2, "Random actions queued every frame.")
	frameTime := flag.Duration("frame", time.Second/60, "Simulated time per frame.")
	configPath := flag.String("config", "", "Optional YAML config for board size and tick.")
	flag.Parse()

	log.Println("Starting soak run...")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Seed = *seed

	session, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	monkey := &MonkeySystem{
		Session:  session,
		Rand:     engine.NewRand(*seed ^ 0x5eed),
		PerFrame: *actionsPerTick,
	}
	session.Register("Monkey", monkey)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		Rows:           cfg.Board.Rows,
		Cols:           cfg.Board.Cols,
		Tick:           cfg.Tick,
		FrameTime:      *frameTime,
		ActionsPerTick: *actionsPerTick,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	dt := frameTime.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			session.Update(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Pushed = monkey.Pushed
	report.Applied = session.Applied()
	report.Games = monkey.Games + 1
	report.Engine = session.Stats()
	report.Scheduler = session.SchedulerStats()
	report.Violations = monkey.Violations
	report.FinalBoard = session.Snapshot().String()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		os.Exit(1)
	}
}
