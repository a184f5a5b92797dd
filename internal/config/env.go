package config

import (
	"os"
	"strings"
	"time"
)

// Env is the process configuration, read once at startup.
type Env struct {
	AppAddr string
	GinMode string

	// PokemonBackend selects the adapter for the pokemon resource family:
	// "soap" (default) or "rest".
	PokemonBackend  string
	PokemonSOAPURL  string
	PokemonRESTURL  string
	TrainerGRPCAddr string

	BackendTimeout time.Duration
}

func LoadEnv() Env {
	env := Env{
		AppAddr:         getenv("APP_ADDR", ":8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		PokemonBackend:  strings.ToLower(getenv("POKEMON_BACKEND", "soap")),
		PokemonSOAPURL:  getenv("POKEMON_SOAP_URL", "http://localhost:8081/PokemonService"),
		PokemonRESTURL:  getenv("POKEMON_REST_URL", "http://localhost:8082"),
		TrainerGRPCAddr: getenv("TRAINER_GRPC_ADDR", "localhost:9090"),
		BackendTimeout:  15 * time.Second,
	}

	if raw := strings.TrimSpace(os.Getenv("BACKEND_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			env.BackendTimeout = d
		}
	}

	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
