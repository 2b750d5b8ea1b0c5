package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eringen/sitemeta"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	code := run(os.Args[1:], os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(sitemeta.EnvOr("LOG_LEVEL", "info")))
	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return z, nil
}

func parseLevel(s string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// run executes one command and returns the process exit code.
func run(args []string, stdout io.Writer, logger *zap.Logger) int {
	if len(args) < 1 {
		printUsage(stdout)
		return 1
	}

	switch args[0] {
	case "check":
		site, err := loadSite(optArg(args, 1), logger)
		if err != nil {
			return 1
		}
		m := site.Metadata()
		logger.Info("site metadata is valid",
			zap.String("title", m.Title),
			zap.String("lang", m.Lang),
			zap.Int("pagination_size", m.PaginationSize),
		)
	case "show":
		site, err := loadSite(optArg(args, 1), logger)
		if err != nil {
			return 1
		}
		if err := writeJSON(stdout, site.Metadata()); err != nil {
			logger.Error("write metadata", zap.Error(err))
			return 1
		}
	case "save":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "Usage: sitemeta save <db> [config.yaml]")
			return 1
		}
		site, err := loadSite(optArg(args, 2), logger)
		if err != nil {
			return 1
		}
		if err := saveSite(args[1], site); err != nil {
			logger.Error("save metadata", zap.String("db", args[1]), zap.Error(err))
			return 1
		}
		logger.Info("site metadata saved", zap.String("db", args[1]))
	case "load":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "Usage: sitemeta load <db>")
			return 1
		}
		m, err := loadStored(args[1])
		if err != nil {
			logger.Error("load metadata", zap.String("db", args[1]), zap.Error(err))
			return 1
		}
		if err := writeJSON(stdout, m); err != nil {
			logger.Error("write metadata", zap.Error(err))
			return 1
		}
	case "version":
		fmt.Fprintf(stdout, "sitemeta %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", args[0])
		printUsage(stdout)
		return 1
	}
	return 0
}

// loadSite loads and validates metadata. Failures are logged before being
// returned, one entry per invalid field.
func loadSite(path string, logger *zap.Logger) (*sitemeta.Site, error) {
	m, err := sitemeta.LoadFile(path)
	if err != nil {
		logConfigError(logger, path, err)
		return nil, err
	}
	site, err := sitemeta.New(m)
	if err != nil {
		logConfigError(logger, path, err)
		return nil, err
	}
	if !m.LocalesAgree() {
		logger.Warn("lang and ogLocale name different locales",
			zap.String("lang", m.Lang),
			zap.String("og_locale", m.OGLocale),
		)
	}
	return site, nil
}

func logConfigError(logger *zap.Logger, path string, err error) {
	if !errors.Is(err, sitemeta.ErrInvalidConfig) {
		logger.Error("load site metadata", zap.String("path", path), zap.Error(err))
		return
	}
	for _, fe := range fieldErrors(err) {
		logger.Error("invalid site metadata", zap.String("field", fe.Field), zap.String("problem", fe.Message))
	}
}

func fieldErrors(err error) []*sitemeta.FieldError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*sitemeta.FieldError
		for _, e := range joined.Unwrap() {
			out = append(out, fieldErrors(e)...)
		}
		return out
	}
	var fe *sitemeta.FieldError
	if errors.As(err, &fe) {
		return []*sitemeta.FieldError{fe}
	}
	return nil
}

func saveSite(dbPath string, site *sitemeta.Site) error {
	store, err := sitemeta.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(site.Metadata())
}

func loadStored(dbPath string) (sitemeta.Metadata, error) {
	store, err := sitemeta.NewStore(dbPath)
	if err != nil {
		return sitemeta.Metadata{}, err
	}
	defer store.Close()
	return store.Load()
}

func writeJSON(w io.Writer, m sitemeta.Metadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func optArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `sitemeta - Validate and inspect blog site metadata

Usage:
  sitemeta <command> [arguments]

Commands:
  check [config.yaml]        Validate the site metadata
  show [config.yaml]         Print the validated metadata as JSON
  save <db> [config.yaml]    Store the validated metadata in SQLite
  load <db>                  Print the metadata stored in SQLite
  version                    Print the sitemeta version
  help                       Show this help message

Metadata starts from the built-in defaults, then the YAML file,
then SITE_* environment variables (.env and .env.local are read too).`)
}
