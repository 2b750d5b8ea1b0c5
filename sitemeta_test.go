package sitemeta

import (
	"errors"
	"sync"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestDefaultFields(t *testing.T) {
	m := MustNew(Default()).Metadata()
	if m.PaginationSize <= 0 {
		t.Errorf("PaginationSize = %d, want > 0", m.PaginationSize)
	}
	for name, v := range map[string]string{
		"Author":       m.Author,
		"Title":        m.Title,
		"Description":  m.Description,
		"ShareMessage": m.ShareMessage,
	} {
		if v == "" {
			t.Errorf("%s should not be empty", name)
		}
	}
	if !langPattern.MatchString(m.Lang) {
		t.Errorf("Lang %q does not look like a language tag", m.Lang)
	}
	if !ogLocalePattern.MatchString(m.OGLocale) {
		t.Errorf("OGLocale %q does not look like an Open Graph locale", m.OGLocale)
	}
	if !m.LocalesAgree() {
		t.Errorf("Lang %q and OGLocale %q should agree", m.Lang, m.OGLocale)
	}
}

func TestNewReturnsValuesUnchanged(t *testing.T) {
	m := Metadata{
		Author:         "Ada",
		Title:          "Notes",
		Description:    "Short notes on things.",
		Lang:           "en-GB",
		OGLocale:       "en_GB",
		ShareMessage:   "Share this post",
		PaginationSize: 6,
	}
	s, err := New(m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	got := s.Metadata()
	if got != m {
		t.Errorf("Metadata() = %+v, want %+v", got, m)
	}
	if got.PaginationSize != 6 {
		t.Errorf("PaginationSize = %d, want 6", got.PaginationSize)
	}
	if got.Lang != "en-GB" || got.OGLocale != "en_GB" {
		t.Errorf("locale = %q/%q, want en-GB/en_GB", got.Lang, got.OGLocale)
	}
}

func TestMetadataIsStableAcrossReads(t *testing.T) {
	s := MustNew(Default())
	first := s.Metadata()

	// Mutating a returned copy must not leak into later reads.
	first.Title = "changed"
	first.PaginationSize = 99
	if first == s.Metadata() {
		t.Fatal("mutating a returned copy changed the Site")
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := s.Metadata(); got != Default() {
				t.Errorf("Metadata() = %+v, want %+v", got, Default())
			}
		}()
	}
	wg.Wait()
}

func TestNewRejectsZeroPaginationSize(t *testing.T) {
	m := Default()
	m.PaginationSize = 0
	s, err := New(m)
	if err == nil {
		t.Fatal("expected error for zero pagination size")
	}
	if s != nil {
		t.Error("expected nil Site on error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error %v should match ErrInvalidConfig", err)
	}
}

func TestMustNewPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustNew to panic")
		}
	}()
	m := Default()
	m.Title = ""
	MustNew(m)
}
