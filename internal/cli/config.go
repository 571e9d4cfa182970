package cli

import (
	"github.com/dmitrymomot/formcatalog/core/server"
	"github.com/dmitrymomot/formcatalog/integration/database/mongo"
	"github.com/dmitrymomot/formcatalog/integration/database/pg"
	"github.com/dmitrymomot/formcatalog/integration/storage/s3"
)

// AppConfig is loaded from the environment (and .env) once per process.
type AppConfig struct {
	AppName       string   `env:"APP_NAME" envDefault:"formcatalog"`
	Env           string   `env:"APP_ENV" envDefault:"development"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLocale string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	CORSOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	PublishPrefix string   `env:"PUBLISH_PREFIX" envDefault:"catalogs"`

	Server server.Config
	PG     pg.Config
	Mongo  mongo.Config
	S3     s3.Config
}

// Production reports whether the app runs with APP_ENV=production.
func (c AppConfig) Production() bool {
	return c.Env == "production"
}
