package school

import (
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/codefm/teachernotebook/core"
)

// School and Class are server-owned entities; the client only renders and
// submits them.
type (
	School struct {
		ID      int     `json:"id"`
		Name    string  `json:"name"`
		Town    string  `json:"town,omitempty"`
		Tlf     int     `json:"tlf,omitempty"`
		Classes []Class `json:"classes,omitempty"`
	}

	Class struct {
		ID         int    `json:"id"`
		SchoolID   int    `json:"schoolId"`
		Name       string `json:"name"`
		SchoolYear string `json:"schoolYear"`
	}
)

// NewSchool is the school form input. The phone is kept as typed so it can
// be validated as exactly 9 digits before being submitted as a number.
type NewSchool struct {
	Name string `json:"name" validate:"required,min=5"`
	Town string `json:"town"`
	Tlf  string `json:"tlf" validate:"omitempty,tlf9"`
}

func (ns *NewSchool) Clean() {
	ns.Name = core.CleanString(ns.Name)
	ns.Town = core.CleanString(ns.Town)
	ns.Tlf = core.CleanString(ns.Tlf)
}

func (ns NewSchool) Validate(validate *validator.Validate, trans ut.Translator) error {
	return core.TranslateErrors(validate.Struct(ns), trans)
}

// SchoolRequest is the wire form of NewSchool.
type SchoolRequest struct {
	Name string `json:"name"`
	Town string `json:"town,omitempty"`
	Tlf  int    `json:"tlf,omitempty"`
}

func (ns NewSchool) request() SchoolRequest {
	req := SchoolRequest{Name: ns.Name, Town: ns.Town}
	if ns.Tlf != "" {
		req.Tlf, _ = strconv.Atoi(ns.Tlf) // already validated as 9 digits
	}
	return req
}

// NewClass is the class form input.
type NewClass struct {
	Name       string `json:"name" validate:"required,min=3"`
	SchoolYear string `json:"schoolYear" validate:"required"`
}

func (nc *NewClass) Clean() {
	nc.Name = core.CleanString(nc.Name)
	nc.SchoolYear = core.CleanString(nc.SchoolYear)
}

func (nc NewClass) Validate(validate *validator.Validate, trans ut.Translator) error {
	return core.TranslateErrors(validate.Struct(nc), trans)
}

// ClassRequest is the wire form of NewClass.
type ClassRequest struct {
	Name       string `json:"name"`
	SchoolYear string `json:"schoolYear"`
}

func (nc NewClass) request() ClassRequest {
	return ClassRequest{Name: nc.Name, SchoolYear: nc.SchoolYear}
}
