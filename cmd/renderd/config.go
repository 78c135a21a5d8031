package main

import "time"

// Config defines the environment variables of the renderd host.
type Config struct {
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	FormatFilepath string        `env:"FORMAT_FILEPATH,required=true"`
	CacheTTL       time.Duration `env:"FORMAT_CACHE_TTL,default=10s"`
}
