package school

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// basePath prefixes every school and class resource path.
const basePath = "/teacher-notebook/v1"

type (
	// Gateway issues authenticated requests against the backend. Failed
	// calls come back as a structured *core.APIError; the service never
	// catches or reinterprets them.
	Gateway interface {
		Get(ctx context.Context, base, path string, out interface{}, headers ...http.Header) error
		Put(ctx context.Context, base, path string, body, out interface{}, headers ...http.Header) error
		Patch(ctx context.Context, base, path string, body, out interface{}, headers ...http.Header) error
		Delete(ctx context.Context, base, path string, out interface{}, headers ...http.Header) error
	}

	// TranslatorFunc resolves the translator for the currently selected
	// locale, so validation messages follow a language switch immediately.
	TranslatorFunc func() ut.Translator

	Service struct {
		api      Gateway
		validate *validator.Validate
		trans    TranslatorFunc
	}
)

func NewService(api Gateway, validate *validator.Validate, trans TranslatorFunc) *Service {
	return &Service{api: api, validate: validate, trans: trans}
}

func (svc *Service) Schools(ctx context.Context) ([]School, error) {
	var schools []School
	if err := svc.api.Get(ctx, basePath, "/schools", &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

func (svc *Service) CreateSchool(ctx context.Context, ns NewSchool) (School, error) {
	ns.Clean()
	if err := ns.Validate(svc.validate, svc.trans()); err != nil {
		return School{}, err
	}
	var sch School
	if err := svc.api.Put(ctx, basePath, "/schools", ns.request(), &sch); err != nil {
		return School{}, err
	}
	return sch, nil
}

func (svc *Service) UpdateSchool(ctx context.Context, id int, ns NewSchool) (School, error) {
	ns.Clean()
	if err := ns.Validate(svc.validate, svc.trans()); err != nil {
		return School{}, err
	}
	var sch School
	if err := svc.api.Patch(ctx, basePath, "/schools/"+strconv.Itoa(id), ns.request(), &sch); err != nil {
		return School{}, err
	}
	return sch, nil
}

func (svc *Service) DeleteSchool(ctx context.Context, id int) error {
	return svc.api.Delete(ctx, basePath, "/schools/"+strconv.Itoa(id), nil)
}

func (svc *Service) CreateClass(ctx context.Context, schoolID int, nc NewClass) (Class, error) {
	nc.Clean()
	if err := nc.Validate(svc.validate, svc.trans()); err != nil {
		return Class{}, err
	}
	var cls Class
	if err := svc.api.Put(ctx, basePath, fmt.Sprintf("/school/%d/classes", schoolID), nc.request(), &cls); err != nil {
		return Class{}, err
	}
	return cls, nil
}

func (svc *Service) UpdateClass(ctx context.Context, id int, nc NewClass) (Class, error) {
	nc.Clean()
	if err := nc.Validate(svc.validate, svc.trans()); err != nil {
		return Class{}, err
	}
	var cls Class
	if err := svc.api.Patch(ctx, basePath, "/classes/"+strconv.Itoa(id), nc.request(), &cls); err != nil {
		return Class{}, err
	}
	return cls, nil
}

func (svc *Service) DeleteClass(ctx context.Context, id int) error {
	return svc.api.Delete(ctx, basePath, "/classes/"+strconv.Itoa(id), nil)
}
