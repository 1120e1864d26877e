package school

import (
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/codefm/teachernotebook/core"
)

func newValidator(t *testing.T) (*validator.Validate, *ut.UniversalTranslator) {
	t.Helper()
	validate := validator.New()
	uni := core.NewTranslators()
	core.InitValidators(validate, uni)
	RegisterValidators(validate, uni)
	return validate, uni
}

func fieldErrors(t *testing.T, err error) []core.FieldError {
	t.Helper()
	if err == nil {
		return nil
	}
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("expected *core.ValidationError, got %T: %v", err, err)
	}
	return vErr.Fields
}

func TestNewSchoolValidation(t *testing.T) {
	tests := []struct {
		name       string
		school     NewSchool
		wantFields map[string]string // field -> exact message, "" for any
	}{
		{
			name:   "valid",
			school: NewSchool{Name: "Lincoln High", Town: "Madrid", Tlf: "912345678"},
		},
		{
			name:   "valid without optional fields",
			school: NewSchool{Name: "Lincoln High"},
		},
		{
			name:       "name required",
			school:     NewSchool{Tlf: "912345678"},
			wantFields: map[string]string{"name": ""},
		},
		{
			name:       "name too short",
			school:     NewSchool{Name: "Lin"},
			wantFields: map[string]string{"name": ""},
		},
		{
			name:       "phone too short",
			school:     NewSchool{Name: "Lincoln High", Tlf: "91234"},
			wantFields: map[string]string{"tlf": "el teléfono debe tener exactamente 9 dígitos"},
		},
		{
			name:       "phone not numeric",
			school:     NewSchool{Name: "Lincoln High", Tlf: "91234567a"},
			wantFields: map[string]string{"tlf": "el teléfono debe tener exactamente 9 dígitos"},
		},
	}

	validate, uni := newValidator(t)
	trans, _ := uni.GetTranslator("es")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.school.Clean()
			err := tt.school.Validate(validate, trans)
			flds := fieldErrors(t, err)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if len(flds) != len(tt.wantFields) {
				t.Fatalf("Validate() fields = %+v; want %d", flds, len(tt.wantFields))
			}
			for _, fld := range flds {
				want, found := tt.wantFields[fld.Field]
				if !found {
					t.Errorf("unexpected field error %+v", fld)
					continue
				}
				if fld.Error == "" {
					t.Errorf("field %q has empty message", fld.Field)
				}
				if want != "" && fld.Error != want {
					t.Errorf("field %q message = %q; want %q", fld.Field, fld.Error, want)
				}
			}
		})
	}
}

func TestNewClassValidation(t *testing.T) {
	tests := []struct {
		name       string
		class      NewClass
		wantFields map[string]string
	}{
		{
			name:  "valid",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "24/25"},
		},
		{
			name:  "century rollover",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "99/00"},
			wantFields: map[string]string{
				"schoolYear": "los años del curso escolar deben ser consecutivos",
			},
		},
		{
			name:       "name required",
			class:      NewClass{SchoolYear: "24/25"},
			wantFields: map[string]string{"name": ""},
		},
		{
			name:       "name too short",
			class:      NewClass{Name: "Ma", SchoolYear: "24/25"},
			wantFields: map[string]string{"name": ""},
		},
		{
			name:       "year required",
			class:      NewClass{Name: "Matemáticas 10A"},
			wantFields: map[string]string{"schoolYear": ""},
		},
		{
			name:  "year not NN/NN",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "2425"},
			wantFields: map[string]string{
				"schoolYear": "el curso escolar debe tener el formato NN/NN",
			},
		},
		{
			name:  "year with wrong separator",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "24-25"},
			wantFields: map[string]string{
				"schoolYear": "el curso escolar debe tener el formato NN/NN",
			},
		},
		{
			name:  "years not consecutive",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "24/26"},
			wantFields: map[string]string{
				"schoolYear": "los años del curso escolar deben ser consecutivos",
			},
		},
		{
			name:  "years reversed",
			class: NewClass{Name: "Matemáticas 10A", SchoolYear: "25/24"},
			wantFields: map[string]string{
				"schoolYear": "los años del curso escolar deben ser consecutivos",
			},
		},
	}

	validate, uni := newValidator(t)
	trans, _ := uni.GetTranslator("es")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.class.Clean()
			err := tt.class.Validate(validate, trans)
			flds := fieldErrors(t, err)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if len(flds) != len(tt.wantFields) {
				t.Fatalf("Validate() fields = %+v; want %d", flds, len(tt.wantFields))
			}
			for _, fld := range flds {
				want, found := tt.wantFields[fld.Field]
				if !found {
					t.Errorf("unexpected field error %+v", fld)
					continue
				}
				if fld.Error == "" {
					t.Errorf("field %q has empty message", fld.Field)
				}
				if want != "" && fld.Error != want {
					t.Errorf("field %q message = %q; want %q", fld.Field, fld.Error, want)
				}
			}
		})
	}
}

func TestValidationMessagesFollowLocale(t *testing.T) {
	validate, uni := newValidator(t)
	class := NewClass{Name: "Física 11A", SchoolYear: "24/26"}

	esTrans, _ := uni.GetTranslator("es")
	flds := fieldErrors(t, class.Validate(validate, esTrans))
	if len(flds) != 1 || flds[0].Error != "los años del curso escolar deben ser consecutivos" {
		t.Errorf("es fields = %+v", flds)
	}

	enTrans, _ := uni.GetTranslator("en")
	flds = fieldErrors(t, class.Validate(validate, enTrans))
	if len(flds) != 1 || flds[0].Error != "school year years must be consecutive" {
		t.Errorf("en fields = %+v", flds)
	}
}
