package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/bushboy/bookingswap-sub016/docs"
	"github.com/bushboy/bookingswap-sub016/internal/adapter/http/routes"
	"github.com/bushboy/bookingswap-sub016/internal/app"
	"github.com/bushboy/bookingswap-sub016/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Auction Service API
// @version         1.0
// @description     Booking swap auctions: lifecycle, proposals, winner selection and rollback alerts.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller id forwarded by the gateway.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to wire service: %v", err)
	}
	defer container.Close()

	if cfg.SweeperEnabled {
		go container.Sweeper.Run(ctx, cfg.SweepInterval)
	} else {
		log.Printf("[sweeper] disabled, run cmd/sweeper separately")
	}

	router := routes.NewRouter(container.Engine, container.Alerter)
	if err := routes.Run(router, cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
