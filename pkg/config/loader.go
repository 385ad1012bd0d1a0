package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parsed copy of one settings struct type.
type entry struct {
	mu     sync.Mutex
	loaded bool
	value  any
}

var (
	entries      sync.Map // reflect.Type -> *entry
	dotenvLoaded sync.Once
)

func entryFor[T any]() *entry {
	e, _ := entries.LoadOrStore(reflect.TypeFor[T](), new(entry))
	return e.(*entry)
}

// parse fills v from the environment. Fields already set in v survive unless
// the environment or an envDefault tag overrides them.
func parse[T any](v *T) error {
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, reflect.TypeFor[T]())
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load fills v from the environment, reading the .env file of the working
// directory on first use. The first successful load of a type is cached and
// every later call for that type gets the cached copy, even if the environment
// changed in between. Failed loads are not cached.
//
//	var cfg config.Kit
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	dotenvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	e := entryFor[T]()
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		fresh := *v
		if err := parse(&fresh); err != nil {
			return err
		}
		e.value, e.loaded = fresh, true
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses the environment into v again and replaces the
// cached copy. Use it after the process environment changed.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v); err != nil {
		return err
	}

	e := entryFor[T]()
	e.mu.Lock()
	e.value, e.loaded = *v, true
	e.mu.Unlock()
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	entries.Clear()
}

// LoadEnv loads the given .env files into the process environment, later files
// overriding earlier ones and variables already set. Without arguments the
// .env file of the working directory is loaded.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
