package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/kit/pkg/config"
	"github.com/dmitrymomot/kit/pkg/i18n"
	"github.com/dmitrymomot/kit/pkg/logger"
	"github.com/dmitrymomot/kit/pkg/text"
	"github.com/dmitrymomot/kit/pkg/types"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfg config.Kit
	if err := config.Load(&cfg); err != nil {
		_ = writef(os.Stderr, "error: %v\n", err)
		return 2
	}
	return runWithArgs(context.Background(), cfg, os.Args[1:], os.Stdout, os.Stderr)
}

// settings are the Kit values after flags were applied.
type settings struct {
	log       *slog.Logger
	localizer text.Localizer
	language  string
	context   types.Context
	strict    bool
	level     text.InfoLevel
	json      bool
}

func runWithArgs(ctx context.Context, cfg config.Kit, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "language tag for parsing and messages")
	fs.StringVar(&cfg.Context, "context", cfg.Context, "value context: internal, interface or request")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "disable coercion")
	fs.StringVar(&cfg.InfoLevel, "level", cfg.InfoLevel, "message detail: enduser, technical or internal")
	fs.StringVar(&cfg.Translations, "translations", cfg.Translations, "translation catalog file or directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	asJSON := fs.Bool("json", false, "decode values as JSON and print results as JSON")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: kit [flags] <type-expression> <value>...\n\n"),
			writeln(stderr, "Processes each value with the type built from the expression."),
			writeln(stderr),
			writeln(stderr, "Flags:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) < 2 {
		if err := writeln(stderr, "error: a type expression and at least one value are required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	s, err := newSettings(ctx, cfg, *asJSON, stderr)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 2
	}

	t, err := types.Build(remaining[0], nil, types.WithLogger(s.log))
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 2
	}

	code := 0
	for _, arg := range remaining[1:] {
		ok, err := process(t, arg, s, stdout, stderr)
		if err != nil {
			return 1
		}
		if !ok {
			code = 1
		}
	}
	return code
}

func newSettings(ctx context.Context, cfg config.Kit, asJSON bool, stderr io.Writer) (settings, error) {
	s := settings{language: cfg.Language, strict: cfg.Strict, json: asJSON}

	opts := []logger.Option{logger.WithEnvironment(cfg.Env, "kit"), logger.WithOutput(stderr)}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return s, err
	}
	opts = append(opts, logger.WithLevel(level))
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return s, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	s.log = logger.New(opts...)

	if s.context, err = types.ParseContext(cfg.Context); err != nil {
		return s, err
	}
	if s.level, err = text.ParseInfoLevel(cfg.InfoLevel); err != nil {
		return s, err
	}

	if cfg.Translations != "" {
		adapter, err := i18n.NewPathAdapter(cfg.Translations)
		if err != nil {
			return s, err
		}
		tr, err := i18n.NewTranslator(ctx, adapter,
			i18n.WithLogger(s.log),
			i18n.WithMissingTranslationsLogging(true),
		)
		if err != nil {
			return s, err
		}
		s.localizer = tr
	}
	return s, nil
}

// process handles a single argument. It reports whether the value was accepted;
// the error is only set when writing the output failed.
func process(t *types.Type, arg string, s settings, stdout, stderr io.Writer) (bool, error) {
	var value any = arg
	if s.json {
		if err := json.Unmarshal([]byte(arg), &value); err != nil {
			return false, writef(stderr, "%s: invalid JSON: %v\n", arg, err)
		}
	}

	popts := []types.ProcessOption{
		types.WithContext(s.context),
		types.WithStrict(s.strict),
		types.WithLanguage(s.language),
	}
	if err := t.Process(&value, popts...); err != nil {
		return false, writef(stderr, "%s: %s\n", arg, err.Message(s.renderOptions()))
	}

	if s.json {
		out, err := json.Marshal(value)
		if err != nil {
			return false, writef(stderr, "%s: %v\n", arg, err)
		}
		return true, writeln(stdout, string(out))
	}

	tx, err := t.Textify(value, popts...)
	if err != nil {
		s.log.Debug("value has no text form", logger.Expression(t.String()), logger.Error(err))
		return true, writef(stdout, "%v\n", value)
	}
	return true, writeln(stdout, tx.Render(s.renderOptions()))
}

func (s settings) renderOptions() text.Options {
	return text.Options{Level: s.level, Localizer: s.localizer, Language: s.language}
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
