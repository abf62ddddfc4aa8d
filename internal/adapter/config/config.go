package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Push      *Push
	Broadcast *Broadcast
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Push struct {
	HostString string `env:"PUSH_PROVIDER_ADDRESS"`
	APIKey     string `env:"PUSH_PROVIDER_KEY"`
}

type Broadcast struct {
	Workers int `env:"BROADCAST_WORKERS" envDefault:"2"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var push Push
	var broadcast Broadcast
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&push.HostString, "p", "", "Push provider address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&push)
	if err != nil {
		return nil, fmt.Errorf("error parsing push config: %w", err)
	}
	err = env.Parse(&broadcast)
	if err != nil {
		return nil, fmt.Errorf("error parsing broadcast config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Push:      &push,
		Broadcast: &broadcast,
		App:       &app,
	}

	return &config, nil
}
