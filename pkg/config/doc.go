// Package config loads typed configuration from environment variables.
//
// Structs describe their settings with `env` and `envDefault` tags
// (github.com/caarlos0/env). Optional .env files are read with
// github.com/joho/godotenv; the default .env in the working directory is
// tried once, automatically, and explicit files can be added with LoadEnv.
//
//	type App struct {
//		Log    logger.Config
//		HTTP   httpserver.Config
//		Errors errorcode.Config
//	}
//
//	var cfg App
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process and served from a
// cache afterwards. Reload and ResetCache exist for tests and for processes
// that change their environment at runtime.
//
// Failures wrap ErrParsingConfig, ErrInvalidConfigType, ErrLoadingEnvFile or
// ErrNilPointer and can be matched with errors.Is.
package config
