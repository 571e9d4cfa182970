// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/formcatalog/core/config"
//
//	type PublishConfig struct {
//		Bucket string `env:"S3_BUCKET,required"`
//		Prefix string `env:"PUBLISH_PREFIX" envDefault:"catalogs"`
//	}
//
//	func main() {
//		var pub PublishConfig
//
//		// Load with error handling
//		if err := config.Load(&pub); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&pub)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 PublishConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 PublishConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Reset clears the cache; tests call it after changing the environment.
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	type MongoConfig struct {
//		URL string `env:"MONGODB_URL,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&MongoConfig{})
package config
