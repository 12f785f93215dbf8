package prefs

import (
	"fmt"
	"strings"

	"github.com/ReiKama414/mysterious-art-marketplace/models"
	"github.com/ReiKama414/mysterious-art-marketplace/storage"
)

// Storage keys, one per preference per guest. Each preference persists
// independently; changing the theme never touches the language entry.
const (
	themeKey       = "theme:"
	languageKey    = "preferredLanguage:"
	demoWarningKey = "hasSeenDemoWarning:"
)

// Store resolves and persists per-guest preferences.
type Store struct {
	kv *storage.KV
}

func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// Theme resolves the guest's theme: the stored value if present and valid,
// else the client's system dark-mode signal, else light.
func (s *Store) Theme(guestID string, systemPrefersDark bool) (models.Theme, error) {
	raw, ok, err := s.kv.Get(themeKey + guestID)
	if err != nil {
		return "", err
	}
	if ok {
		if t := models.Theme(raw); t.Valid() {
			return t, nil
		}
	}
	if systemPrefersDark {
		return models.ThemeDark, nil
	}
	return models.ThemeLight, nil
}

// SetTheme validates and persists the theme.
func (s *Store) SetTheme(guestID string, t models.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("prefs: invalid theme %q", t)
	}
	return s.kv.Put(themeKey+guestID, string(t))
}

// Language resolves the guest's language: the stored value if present and
// supported, else a prefix match on the client locale, else English.
func (s *Store) Language(guestID, locale string) (models.Language, error) {
	raw, ok, err := s.kv.Get(languageKey + guestID)
	if err != nil {
		return "", err
	}
	if ok {
		if l := models.Language(raw); l.Valid() {
			return l, nil
		}
	}
	return DetectLanguage(locale), nil
}

// SetLanguage validates and persists the language.
func (s *Store) SetLanguage(guestID string, l models.Language) error {
	if !l.Valid() {
		return fmt.Errorf("prefs: unsupported language %q", l)
	}
	return s.kv.Put(languageKey+guestID, string(l))
}

// HasSeenDemoWarning reports whether the guest dismissed the demo notice.
func (s *Store) HasSeenDemoWarning(guestID string) (bool, error) {
	raw, ok, err := s.kv.Get(demoWarningKey + guestID)
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}

// MarkDemoWarningSeen records the dismissal.
func (s *Store) MarkDemoWarningSeen(guestID string) error {
	return s.kv.Put(demoWarningKey+guestID, "true")
}

// DetectLanguage maps a locale tag to a supported language by prefix,
// falling back to English.
func DetectLanguage(locale string) models.Language {
	l := strings.ToLower(locale)
	switch {
	case strings.HasPrefix(l, "zh"):
		return models.LanguageZH
	case strings.HasPrefix(l, "ja"):
		return models.LanguageJA
	case strings.HasPrefix(l, "en"):
		return models.LanguageEN
	}
	return models.LanguageEN
}
