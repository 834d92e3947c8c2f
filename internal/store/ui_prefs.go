package store

import (
	"context"
	"errors"

	"github.com/dmatveev/swarm-console/models"
)

// Fixed preference keys for the persisted UI settings.
const (
	PrefTheme  = "ui.theme"
	PrefLocale = "ui.locale"
)

// UIPreferences persists the theme and locale choices between runs.
// Unknown or missing stored values fall back to the defaults (light
// theme, English locale) instead of failing.
type UIPreferences struct {
	prefs PreferenceRepository
}

func NewUIPreferences(prefs PreferenceRepository) *UIPreferences {
	return &UIPreferences{prefs: prefs}
}

func (s *UIPreferences) Theme(ctx context.Context) (models.Theme, error) {
	value, err := s.prefs.Get(ctx, PrefTheme)
	if errors.Is(err, ErrPreferenceNotFound) {
		return models.ThemeLight, nil
	}
	if err != nil {
		return models.ThemeLight, err
	}

	if theme := models.Theme(value); theme == models.ThemeLight || theme == models.ThemeDark {
		return theme, nil
	}

	return models.ThemeLight, nil
}

func (s *UIPreferences) SetTheme(ctx context.Context, theme models.Theme) error {
	return s.prefs.Set(ctx, PrefTheme, string(theme))
}

func (s *UIPreferences) Locale(ctx context.Context) (string, error) {
	value, err := s.prefs.Get(ctx, PrefLocale)
	if errors.Is(err, ErrPreferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *UIPreferences) SetLocale(ctx context.Context, locale string) error {
	return s.prefs.Set(ctx, PrefLocale, locale)
}
