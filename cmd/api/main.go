package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend-tripmate/internal/config"
	"backend-tripmate/internal/genai"
	"backend-tripmate/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadEnv    func(...string) error
	loadConfig func() config.Config
	newTravel  func(config.Config) server.TravelClient
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, server.TravelClient, <-chan os.Signal, ListenFunc) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadEnv:    godotenv.Load,
		loadConfig: config.Load,
		newTravel:  newTravel,
		notify:     signal.Notify,
		run:        Run,
	}
}

func newTravel(cfg config.Config) server.TravelClient {
	return genai.NewClient(
		cfg.GeminiBaseURL,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.ContentLanguage,
		cfg.GenAIRPS,
		time.Duration(cfg.GenAITimeoutSeconds)*time.Second,
	)
}

func realMain(deps mainDeps) {
	if err := deps.loadEnv(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := deps.loadConfig()
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY is empty, generative requests will fail")
	}

	travel := deps.newTravel(cfg)

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, travel, signals, nil); err != nil {
		log.Printf("server exited with error: %v", err)
	}
}

type ListenFunc func(app *fiber.App, addr string) error

var defaultListen ListenFunc = func(app *fiber.App, addr string) error {
	return app.Listen(addr)
}

var shutdownFn = func(app *fiber.App, ctx context.Context) error {
	return app.ShutdownWithContext(ctx)
}

// Run starts the HTTP server and waits for termination signals.
func Run(ctx context.Context, cfg config.Config, travel server.TravelClient, signals <-chan os.Signal, listen ListenFunc) error {
	srv := server.NewServer(cfg, travel)

	if listen == nil {
		listen = defaultListen
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(srv.App, cfg.ServerPort)
	}()

	select {
	case <-signals:
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return shutdownFn(srv.App, shutdownCtx)
}
