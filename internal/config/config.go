package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/listctx/internal/app"
	"github.com/atomicstack/listctx/internal/backend"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTick    = "LISTCTX_TICK"
	envWidth   = "LISTCTX_WIDTH"
	envHeight  = "LISTCTX_HEIGHT"
	envFooter  = "LISTCTX_FOOTER"
	envFocus   = "LISTCTX_FOCUS"
	envTrace   = "LISTCTX_TRACE"
	envLogFile = "LISTCTX_LOG_FILE"

	defaultLogFile = "listctx.log"
	dotenvFile     = ".env"
)

// Load parses configuration from CLI arguments, the process environment and
// an optional .env file in the working directory.
func Load() (Config, error) {
	environ, err := withDotenv(dotenvFile, os.Environ())
	if err != nil {
		return Config{}, err
	}
	return LoadArgs(os.Args[1:], environ)
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	flagSet := flag.NewFlagSet("listctx", flag.ContinueOnError)
	flagSet.SetOutput(new(strings.Builder))

	tick := flagSet.Duration("tick", envOrDuration(env, envTick, backend.DefaultInterval), "notification rotation interval")
	width := flagSet.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := flagSet.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := flagSet.Bool("footer", envOrBool(env, envFooter, false), "show key help in a footer row")
	focus := flagSet.String("focus", envOrDefault(env, envFocus, ""), "title of the entry to use as the initial exit point")
	trace := flagSet.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := flagSet.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")

	if err := flagSet.Parse(args); err != nil {
		return Config{}, err
	}
	if flagSet.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			TickInterval: *tick,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Focus:        *focus,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"tick":    tick.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"focus":   *focus,
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// withDotenv appends values from path that the environment does not already
// define. A missing file is not an error.
func withDotenv(path string, environ []string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	existing := parseEnv(environ)
	merged := append([]string(nil), environ...)
	for key, value := range values {
		if _, ok := existing[key]; ok {
			continue
		}
		merged = append(merged, key+"="+value)
	}
	return merged, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the flag parser accepts but the program cannot use.
func Validate(cfg Config) error {
	if cfg.App.TickInterval <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.TickInterval)
	}
	return nil
}
