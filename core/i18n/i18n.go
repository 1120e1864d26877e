// Package i18n holds the bilingual UI text catalog. Keys are dotted paths
// mirroring the screens they belong to; lookups fall back to the key itself
// so a missing entry never blanks the UI.
package i18n

import (
	localeen "github.com/go-playground/locales/en"
	localees "github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"

	"github.com/codefm/teachernotebook/core/locale"
)

var uni *ut.UniversalTranslator

func init() {
	es := localees.New()
	uni = ut.New(es, es, localeen.New())
	esTrans, _ := uni.GetTranslator("es")
	enTrans, _ := uni.GetTranslator("en")
	for _, e := range catalog {
		_ = esTrans.Add(e.key, e.es, false)
		_ = enTrans.Add(e.key, e.en, false)
	}
}

// T returns the UI text for key in the given locale.
// Unknown keys are returned as-is.
func T(loc locale.Locale, key string) string {
	trans, found := uni.GetTranslator(loc.String())
	if !found {
		return key
	}
	s, err := trans.T(key)
	if err != nil {
		return key
	}
	return s
}
