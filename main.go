package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pokedex/internal/backend"
	"pokedex/internal/backend/rest"
	"pokedex/internal/backend/soap"
	"pokedex/internal/backend/trainerrpc"
	intconfig "pokedex/internal/config"
	router "pokedex/internal/http"
	h "pokedex/internal/http/handlers"
	"pokedex/internal/logger"
	"pokedex/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	zlog, err := logger.New(env.GinMode)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// shared backend clients, created once and reused across requests
	httpClient := &http.Client{Timeout: env.BackendTimeout}

	var pokemonBackend backend.PokemonBackend
	switch env.PokemonBackend {
	case "rest":
		pokemonBackend = rest.NewClient(env.PokemonRESTURL, httpClient, zlog)
		zlog.Info("pokemon backend", "transport", "rest", "url", env.PokemonRESTURL)
	default:
		pokemonBackend = soap.NewClient(env.PokemonSOAPURL, httpClient, zlog)
		zlog.Info("pokemon backend", "transport", "soap", "url", env.PokemonSOAPURL)
	}

	trainerClient, err := trainerrpc.Dial(env.TrainerGRPCAddr, zlog)
	if err != nil {
		zlog.Fatal("trainer backend dial failed", "addr", env.TrainerGRPCAddr, "error", err)
	}
	defer trainerClient.Close()

	pokemonService := services.NewPokemonService(pokemonBackend, zlog)
	trainerService := services.NewTrainerService(trainerClient, zlog)

	r := router.NewRouter(zlog,
		h.NewPokemonHandler(pokemonService),
		h.NewTrainerHandler(trainerService),
	)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("shutdown failed", "error", err)
	}

	zlog.Info("server stopped")
}
