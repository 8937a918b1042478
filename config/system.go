// Loads config.yaml + env overrides. Everything environment-ish (port,
// converter binary, email domain, redis) goes through here.

package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper" // Viper library to read config file + env variables
)

// Config mirrors the shape of our expected configuration.
// Viper unmarshals values from YAML/env into these fields.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"env"`       // dev|staging|prod
	HTTPPort string `mapstructure:"http_port"` // "8080"

	// Converter settings. The binary must resolve on PATH (or be an
	// absolute path); checked once at startup.
	ConverterBin   string `mapstructure:"converter_bin"`   // "soffice" or full path
	ConvertTimeout string `mapstructure:"convert_timeout"` // parsed by time.ParseDuration, e.g. "30s"

	// Domain appended to the derived email local part.
	EmailDomain string `mapstructure:"email_domain"` // "artofdrawers.com"

	// Optional Redis log sink; empty addr disables it entirely.
	RedisAddr string `mapstructure:"redis_addr"`     // "localhost:6379"
	RedisDB   int    `mapstructure:"redis_db"`       // Redis logical DB number
	RedisPass string `mapstructure:"redis_password"` // Redis password (if any)
}

// expose parsed duration globally
var ConvertTimeoutDuration time.Duration

func Load() *Config {
	v := viper.New()                                   // isolated instance, not the global one
	v.SetConfigName("config")                          // expect "config.(yaml|yml|json...)"
	v.SetConfigType("yaml")
	v.AddConfigPath(".")                               // project root
	v.AddConfigPath("./config")                        // also allow ./config (optional)
	v.SetEnvPrefix("APP")                              // env overrides like APP_HTTP_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // nested keys -> ENV_STYLE
	v.AutomaticEnv()

	// defaults (safe for local)
	v.SetDefault("app_name", "aod-onboarding")
	v.SetDefault("env", "dev")
	v.SetDefault("http_port", "8080")
	v.SetDefault("converter_bin", "soffice") // LibreOffice headless binary
	v.SetDefault("convert_timeout", "30s")   // bound the external process
	v.SetDefault("email_domain", "artofdrawers.com")
	v.SetDefault("redis_addr", "") // log sink off unless configured
	v.SetDefault("redis_db", 0)

	// Try to read config file; if not found, proceed with defaults + env vars.
	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file found, using defaults/env: %v", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}

	// parse convert_timeout string into time.Duration
	d, err := time.ParseDuration(c.ConvertTimeout)
	if err != nil {
		log.Fatalf("[config] invalid convert_timeout value: %v", err)
	}
	ConvertTimeoutDuration = d

	return &c
}
