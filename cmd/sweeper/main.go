// Command sweeper drives the time-based auction transitions on its own:
// ending expired auctions, auto-selecting winners and converting auctions
// whose event moved too close.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bushboy/bookingswap-sub016/internal/app"
	"github.com/bushboy/bookingswap-sub016/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to wire sweeper: %v", err)
	}
	defer container.Close()

	if *once {
		report := container.Sweeper.RunOnce(ctx)
		for _, r := range report.Sweeps {
			if r.Failed > 0 {
				container.Close()
				os.Exit(1)
			}
		}
		return
	}
	container.Sweeper.Run(ctx, cfg.SweepInterval)
}
