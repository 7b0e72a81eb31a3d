package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbeisheim/chess-rules/internal/config"
	"github.com/benbeisheim/chess-rules/internal/controller"
	"github.com/benbeisheim/chess-rules/internal/service"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gameManager.RunMatchmaking(ctx, cfg.MatchmakingInterval)

	app := controller.NewApp(cfg, gameService)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr())
		serverErr <- app.Listen(cfg.Addr())
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("server: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("received %s, shutting down", sig)
	}

	cancel()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("server stopped")
}
