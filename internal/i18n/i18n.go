// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Transferlist.
// It uses the go-i18n library to load and manage translation files, allowing the
// user interface to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	// bundle stores all the loaded translation messages from the locale files.
	bundle *i18n.Bundle
	// localizer is used to translate messages into a specific language.
	localizer *i18n.Localizer
	// currentLang is the language requested by the last Init call.
	currentLang string
	// locales maps each embedded locale code to its parsed tag.
	locales map[string]language.Tag
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	locales = make(map[string]language.Tag)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile(path.Join("locales", f.Name()))
		mf, err := bundle.ParseMessageFileBytes(data, f.Name())
		if err != nil {
			continue
		}
		locales[strings.TrimSuffix(f.Name(), path.Ext(f.Name()))] = mf.Tag
	}

	currentLang = lang
	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language passed to the last Init/SetLang call.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return currentLang
}

// GetAvailableLocales returns the embedded locale codes mapped to their
// self-describing display names (e.g. "de" -> "Deutsch").
func GetAvailableLocales() map[string]string {
	if localizer == nil {
		Init("en")
	}
	out := make(map[string]string, len(locales))
	for code, tag := range locales {
		name := display.Self.Name(tag)
		if name == "" {
			name = code
		}
		out[code] = name
	}
	return out
}

// T translates a message by its ID.
//
// A single map[string]any argument is passed to the message template as
// template data; any other arguments are applied to the translation with
// fmt.Sprintf. If the i18n system has not been initialized, it defaults to
// English. If a translation for the given ID is not found, the ID itself is
// returned.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		// go-i18n reports unknown IDs as errors; fall back to the ID.
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
