package school

import (
	"regexp"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/codefm/teachernotebook/core"
)

var (
	// custom validation tags & texts
	tlfTag   = "tlf9"
	tlfRegex = regexp.MustCompile(`^\d{9}$`)

	schoolYearFormatTag   = "schoolyear"
	schoolYearFormatRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)

	schoolYearSeqTag = "schoolyear_seq"

	translations = []struct{ tag, es, en string }{
		{tlfTag, "el teléfono debe tener exactamente 9 dígitos", "phone must be exactly 9 digits"},
		{schoolYearFormatTag, "el curso escolar debe tener el formato NN/NN", "school year must use the NN/NN format"},
		{schoolYearSeqTag, "los años del curso escolar deben ser consecutivos", "school year years must be consecutive"},
	}
)

// RegisterValidators registers the school domain validators and their
// translated texts in both supported languages.
func RegisterValidators(validate *validator.Validate, uni *ut.UniversalTranslator) {
	_ = validate.RegisterValidation(tlfTag, tlfValidation)
	validate.RegisterStructValidation(classStructValidation, NewClass{})

	for _, lang := range []string{"es", "en"} {
		trans, _ := uni.GetTranslator(lang)
		for _, tr := range translations {
			text := tr.es
			if lang == "en" {
				text = tr.en
			}
			core.RegisterCustomTranslation(validate, trans, tr.tag, text)
		}
	}
}

// tlfValidation only allows Spanish 9-digit phone numbers.
func tlfValidation(fl validator.FieldLevel) bool {
	return tlfRegex.MatchString(fl.Field().String())
}

// classStructValidation checks the school year on NewClass: NN/NN where the
// second two-digit year equals the first plus one. Format and consecutiveness
// report distinct tags so the user gets a distinct message for each.
func classStructValidation(sl validator.StructLevel) {
	nc := sl.Current().Interface().(NewClass)
	if nc.SchoolYear == "" {
		return // the required tag reports this one
	}
	if !schoolYearFormatRegex.MatchString(nc.SchoolYear) {
		sl.ReportError(nc.SchoolYear, "schoolYear", "SchoolYear", schoolYearFormatTag, "")
		return
	}
	first, _ := strconv.Atoi(nc.SchoolYear[:2])
	second, _ := strconv.Atoi(nc.SchoolYear[3:])
	if second != first+1 {
		sl.ReportError(nc.SchoolYear, "schoolYear", "SchoolYear", schoolYearSeqTag, "")
	}
}
