package sitemeta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadFile builds metadata from Default, the YAML file at path and
// environment overrides, in that order. An empty path skips the file.
// The result is not validated; pass it to New.
func LoadFile(path string) (Metadata, error) {
	if err := loadEnvFiles(); err != nil {
		return Metadata{}, err
	}

	m := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Metadata{}, fmt.Errorf("sitemeta: read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Metadata{}, fmt.Errorf("sitemeta: parse config %s: %w", path, err)
		}
	}
	return ApplyEnv(m)
}

// loadEnvFiles loads ENV_FILE if set, otherwise .env.local then .env.
// Missing files are ignored.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("sitemeta: load env file %s: %w", envFile, err)
		}
		return nil
	}
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("sitemeta: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields of m with any SITE_* environment variables that are set.
func ApplyEnv(m Metadata) (Metadata, error) {
	m.Author = EnvOr("SITE_AUTHOR", m.Author)
	m.Title = EnvOr("SITE_TITLE", m.Title)
	m.Description = EnvOr("SITE_DESCRIPTION", m.Description)
	m.Lang = EnvOr("SITE_LANG", m.Lang)
	m.OGLocale = EnvOr("SITE_OG_LOCALE", m.OGLocale)
	m.ShareMessage = EnvOr("SITE_SHARE_MESSAGE", m.ShareMessage)
	if v := strings.TrimSpace(os.Getenv("SITE_PAGINATION_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Metadata{}, &FieldError{
				Field:   "paginationSize",
				Message: fmt.Sprintf("SITE_PAGINATION_SIZE=%q is not an integer", v),
			}
		}
		m.PaginationSize = n
	}
	return m, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
