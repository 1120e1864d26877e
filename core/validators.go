package core

import (
	"reflect"
	"strings"

	localeen "github.com/go-playground/locales/en"
	localees "github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"github.com/pkg/errors"
)

var errValidationFailed = errors.New("validation failed")

// NewTranslators builds the universal translator carrying both supported
// languages. Spanish is the fallback, matching the default UI language.
func NewTranslators() *ut.UniversalTranslator {
	es := localees.New()
	return ut.New(es, es, localeen.New())
}

// InitValidators instantiates the validator for use, registering the stock
// error messages in both supported languages.
func InitValidators(validate *validator.Validate, uni *ut.UniversalTranslator) {
	esTrans, _ := uni.GetTranslator("es")
	enTrans, _ := uni.GetTranslator("en")
	_ = es_translations.RegisterDefaultTranslations(validate, esTrans)
	_ = en_translations.RegisterDefaultTranslations(validate, enTrans)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, trans ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateErrors flattens a validator error into a ValidationError whose
// field messages are translated and kept in struct declaration order, so
// callers can point the user at the first invalid field.
func TranslateErrors(err error, trans ut.Translator) error {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(trans)})
	}
	return NewValidationError(errValidationFailed, flds...)
}
