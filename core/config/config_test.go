package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/config"
)

type testConfig struct {
	Name   string `env:"FORMCATALOG_TEST_NAME" envDefault:"general"`
	Limit  int    `env:"FORMCATALOG_TEST_LIMIT" envDefault:"10"`
	Secret string `env:"FORMCATALOG_TEST_SECRET"`
}

type requiredConfig struct {
	Bucket string `env:"FORMCATALOG_TEST_BUCKET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults and env", func(t *testing.T) {
		config.Reset()
		t.Setenv("FORMCATALOG_TEST_LIMIT", "25")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "general", cfg.Name)
		assert.Equal(t, 25, cfg.Limit)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("FORMCATALOG_TEST_SECRET", "first")

		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("FORMCATALOG_TEST_SECRET", "second")
		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Secret)

		config.Reset()
		var third testConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Secret)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
		assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.Error(t, config.Load[testConfig](nil))
	})
}
