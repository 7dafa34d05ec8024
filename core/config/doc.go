// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/junctionio/junction/core/config"
//
//	type HTTPConfig struct {
//		Host         string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
//		Port         int           `env:"HTTP_PORT" envDefault:"8080"`
//		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
//		SigningKey   string        `env:"SIGNING_KEY,required"`
//	}
//
//	func main() {
//		var cfg HTTPConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 HTTPConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 HTTPConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	type AssetsConfig struct {
//		Dir string `env:"ASSETS_DIR,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&AssetsConfig{})
package config
