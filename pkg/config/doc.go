// Package config loads typed configuration structs from environment
// variables, optionally seeded from a .env file.
//
// It is a thin composition of godotenv and caarlos0/env: the first Load in
// a process reads .env when one exists, then every call parses the current
// environment into the given struct by its env tags. Nothing is cached
// between calls; load once at startup and pass the struct down explicitly.
//
// # Usage
//
//	type Config struct {
//		DatabaseURL string        `env:"DATABASE_URL,required"`
//		HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Debounce    time.Duration `env:"DEBOUNCE" envDefault:"300ms"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
