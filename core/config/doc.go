// Package config loads typed configuration from environment variables with
// caarlos0/env struct tags. A .env file is read once via godotenv on first
// use, and each configuration type is parsed once and cached.
//
//	type ViewConfig struct {
//		Ext  string   `env:"VIEW_EXT" envDefault:"html"`
//		Path []string `env:"VIEW_PATH" envSeparator:","`
//	}
//
//	var cfg ViewConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, for use during startup.
// Because results are cached per type, changing the environment after the
// first Load of a type has no effect for that type.
package config
