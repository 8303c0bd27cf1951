package i18n

import (
	"context"
	"embed"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// SupportedLanguages lists the tags with a message file, in load order.
var SupportedLanguages []string

type localizerKey struct{}

// InitI18n loads every embedded locales/<lang>.toml into a bundle whose fallback is defaultLang.
func InitI18n(defaultLang string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.MustParse(defaultLang))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	SupportedLanguages = make([]string, 0)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		filePath := path.Join("locales", entry.Name())
		file, err := locales.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(file, filePath); err != nil {
			return nil, err
		}
		SupportedLanguages = append(SupportedLanguages, extractLanguageFromPath(filePath))
	}
	return bundle, nil
}

// en.toml -> en
func extractLanguageFromPath(filePath string) string {
	baseName := path.Base(filePath)
	return strings.TrimSuffix(baseName, path.Ext(baseName))
}

// WithLocalizer stores l in ctx for T.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, l)
}

// T translates key with the localizer carried by ctx. fallback is returned when ctx
// has no localizer or no language defines key.
func T(ctx context.Context, key, fallback string, data map[string]any) string {
	localizer, ok := ctx.Value(localizerKey{}).(*i18n.Localizer)
	if !ok || key == "" {
		return fallback
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
