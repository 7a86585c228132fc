// Package lang holds the user-facing strings for every screen and formats prices.
//
// Messages live in locales/<tag>.toml and are loaded into a go-i18n bundle at init.
// T returns the message for a key, then applies fmt-style args when given, so
// callers can keep writing lang.T(l, "cart_total", money).
package lang

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	En = "en"
	Uz = "uz"
)

// Default is used when a user has not picked a language.
var Default = En

//go:embed locales/*.toml
var localesFS embed.FS

var (
	bundle     *i18n.Bundle
	localizers sync.Map // lang code -> *i18n.Localizer
)

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	names, err := fs.Glob(localesFS, "locales/*.toml")
	if err != nil {
		panic(fmt.Sprintf("lang: list locales: %v", err))
	}
	for _, name := range names {
		data, err := localesFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("lang: read %s: %v", name, err))
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			panic(fmt.Sprintf("lang: parse %s: %v", name, err))
		}
	}
}

// Supported reports whether code has a message file.
func Supported(code string) bool {
	return code == En || code == Uz
}

// Normalize maps unknown or empty codes to Default.
func Normalize(code string) string {
	if Supported(code) {
		return code
	}
	return Default
}

func localizer(code string) *i18n.Localizer {
	code = Normalize(code)
	if l, ok := localizers.Load(code); ok {
		return l.(*i18n.Localizer)
	}
	l, _ := localizers.LoadOrStore(code, i18n.NewLocalizer(bundle, code, Default))
	return l.(*i18n.Localizer)
}

// T returns the message for key in lang, formatted with args. Missing keys return the key itself.
func T(lang, key string, args ...interface{}) string {
	msg, err := localizer(lang).Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		log.Printf("lang: missing message key=%s lang=%s: %v", key, lang, err)
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Money formats an amount in minor units with thousands separators, e.g. N1,500.
func Money(lang string, amount int64) string {
	tag := language.English
	if Normalize(lang) == Uz {
		tag = language.Uzbek
	}
	return message.NewPrinter(tag).Sprintf("N%d", amount)
}
