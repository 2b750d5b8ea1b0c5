package sitemeta

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidConfig is matched by every metadata validation failure.
var ErrInvalidConfig = errors.New("sitemeta: invalid configuration")

var (
	langPattern     = regexp.MustCompile(`^[A-Za-z]{2,8}([-_][A-Za-z0-9]{1,8})*$`)
	ogLocalePattern = regexp.MustCompile(`^[a-z]{2,3}_[A-Z]{2}$`)
)

// FieldError reports one invalid metadata field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("sitemeta: %s %s", e.Field, e.Message)
}

// Is makes every FieldError match ErrInvalidConfig.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks every field and returns all failures joined together, or
// nil when the metadata is usable.
func (m Metadata) Validate() error {
	var errs []error
	required := []struct {
		field, value string
	}{
		{"author", m.Author},
		{"title", m.Title},
		{"description", m.Description},
		{"shareMessage", m.ShareMessage},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &FieldError{Field: r.field, Message: "is required"})
		}
	}

	if m.PaginationSize <= 0 {
		errs = append(errs, &FieldError{
			Field:   "paginationSize",
			Message: fmt.Sprintf("must be a positive integer, got %d", m.PaginationSize),
		})
	}

	if err := validateLang(m.Lang); err != nil {
		errs = append(errs, err)
	}
	if err := validateOGLocale(m.OGLocale); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateLang(lang string) error {
	if lang == "" {
		return &FieldError{Field: "lang", Message: "is required"}
	}
	if strings.Contains(lang, "_") || !langPattern.MatchString(lang) {
		return &FieldError{Field: "lang", Message: fmt.Sprintf("%q is not a language tag like en-GB", lang)}
	}
	if _, err := parseTag(lang); err != nil {
		return &FieldError{Field: "lang", Message: fmt.Sprintf("%q: %v", lang, err)}
	}
	return nil
}

func validateOGLocale(locale string) error {
	if locale == "" {
		return &FieldError{Field: "ogLocale", Message: "is required"}
	}
	if !ogLocalePattern.MatchString(locale) {
		return &FieldError{Field: "ogLocale", Message: fmt.Sprintf("%q is not a locale like en_GB", locale)}
	}
	if _, err := parseTag(locale); err != nil {
		return &FieldError{Field: "ogLocale", Message: fmt.Sprintf("%q: %v", locale, err)}
	}
	return nil
}
