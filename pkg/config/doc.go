// Package config reads the settings of the kit command from KIT_* environment
// variables and optional .env files.
//
// The settings live in Kit:
//
//	KIT_ENV           logger preset, "production" selects JSON output (default development)
//	KIT_LANGUAGE      BCP 47 tag for locale-aware numbers and messages (default en)
//	KIT_TRANSLATIONS  catalog file or directory of catalog files
//	KIT_LOG_LEVEL     debug, info, warn or error (default warn)
//	KIT_LOG_FORMAT    text or json, overrides the KIT_ENV preset
//	KIT_CONTEXT       internal, interface or request (default interface)
//	KIT_STRICT        disable coercion (default false)
//	KIT_INFO_LEVEL    enduser, technical or internal (default enduser)
//
// Load parses the environment into a struct with github.com/caarlos0/env/v11
// after reading the working directory's .env file with github.com/joho/godotenv.
// The result is cached per struct type, so the command reads its settings once:
//
//	var cfg config.Kit
//	config.MustLoad(&cfg)
//
// LoadEnv reads extra .env files before loading. ForceReloadConfig and
// ResetCache exist for tests that change the environment between loads.
//
// Failures wrap ErrParsingConfig, ErrInvalidConfigType, ErrNilPointer or
// ErrLoadingEnvFile and can be checked with errors.Is.
package config
