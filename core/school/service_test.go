package school

import (
	"context"
	"net/http"
	"testing"

	ut "github.com/go-playground/universal-translator"

	"github.com/codefm/teachernotebook/core"
)

type call struct {
	method string
	path   string
	body   interface{}
}

// gatewayStub records calls and replies with canned values.
type gatewayStub struct {
	calls []call
	err   error
	reply func(out interface{})
}

func (g *gatewayStub) record(method, base, path string, body, out interface{}) error {
	g.calls = append(g.calls, call{method: method, path: base + path, body: body})
	if g.err != nil {
		return g.err
	}
	if g.reply != nil && out != nil {
		g.reply(out)
	}
	return nil
}

func (g *gatewayStub) Get(_ context.Context, base, path string, out interface{}, _ ...http.Header) error {
	return g.record(http.MethodGet, base, path, nil, out)
}

func (g *gatewayStub) Put(_ context.Context, base, path string, body, out interface{}, _ ...http.Header) error {
	return g.record(http.MethodPut, base, path, body, out)
}

func (g *gatewayStub) Patch(_ context.Context, base, path string, body, out interface{}, _ ...http.Header) error {
	return g.record(http.MethodPatch, base, path, body, out)
}

func (g *gatewayStub) Delete(_ context.Context, base, path string, out interface{}, _ ...http.Header) error {
	return g.record(http.MethodDelete, base, path, nil, out)
}

func newTestService(t *testing.T) (*Service, *gatewayStub) {
	t.Helper()
	validate, uni := newValidator(t)
	gw := &gatewayStub{}
	svc := NewService(gw, validate, func() ut.Translator {
		trans, _ := uni.GetTranslator("es")
		return trans
	})
	return svc, gw
}

func TestServiceSchools(t *testing.T) {
	svc, gw := newTestService(t)
	gw.reply = func(out interface{}) {
		*(out.(*[]School)) = []School{{ID: 1, Name: "Lincoln High"}}
	}

	schools, err := svc.Schools(context.Background())
	if err != nil {
		t.Fatalf("Schools() failed: %v", err)
	}
	if len(schools) != 1 || schools[0].Name != "Lincoln High" {
		t.Errorf("Schools() = %+v", schools)
	}
	if len(gw.calls) != 1 || gw.calls[0].path != "/teacher-notebook/v1/schools" {
		t.Errorf("calls = %+v", gw.calls)
	}
}

func TestServiceCreateSchool(t *testing.T) {
	t.Run("valid input is cleaned and submitted", func(t *testing.T) {
		svc, gw := newTestService(t)
		_, err := svc.CreateSchool(context.Background(), NewSchool{Name: "  Lincoln High  ", Tlf: "912345678"})
		if err != nil {
			t.Fatalf("CreateSchool() failed: %v", err)
		}
		if len(gw.calls) != 1 {
			t.Fatalf("calls = %+v", gw.calls)
		}
		c := gw.calls[0]
		if c.method != http.MethodPut || c.path != "/teacher-notebook/v1/schools" {
			t.Errorf("call = %+v", c)
		}
		req, ok := c.body.(SchoolRequest)
		if !ok {
			t.Fatalf("body = %T", c.body)
		}
		if req.Name != "Lincoln High" || req.Tlf != 912345678 {
			t.Errorf("request = %+v", req)
		}
	})

	t.Run("invalid input never reaches the network", func(t *testing.T) {
		svc, gw := newTestService(t)
		_, err := svc.CreateSchool(context.Background(), NewSchool{Name: "Lin"})
		if _, ok := err.(*core.ValidationError); !ok {
			t.Fatalf("CreateSchool() error = %T (%v); want *core.ValidationError", err, err)
		}
		if len(gw.calls) != 0 {
			t.Errorf("calls = %+v; want none", gw.calls)
		}
	})
}

func TestServiceUpdateSchool(t *testing.T) {
	svc, gw := newTestService(t)
	_, err := svc.UpdateSchool(context.Background(), 7, NewSchool{Name: "Lincoln High", Town: "Madrid"})
	if err != nil {
		t.Fatalf("UpdateSchool() failed: %v", err)
	}
	if len(gw.calls) != 1 {
		t.Fatalf("calls = %+v", gw.calls)
	}
	c := gw.calls[0]
	if c.method != http.MethodPatch || c.path != "/teacher-notebook/v1/schools/7" {
		t.Errorf("call = %+v", c)
	}
}

func TestServiceDeleteSchool(t *testing.T) {
	svc, gw := newTestService(t)
	if err := svc.DeleteSchool(context.Background(), 7); err != nil {
		t.Fatalf("DeleteSchool() failed: %v", err)
	}
	c := gw.calls[0]
	if c.method != http.MethodDelete || c.path != "/teacher-notebook/v1/schools/7" {
		t.Errorf("call = %+v", c)
	}
}

func TestServiceCreateClass(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, gw := newTestService(t)
		_, err := svc.CreateClass(context.Background(), 3, NewClass{Name: "Física 11A", SchoolYear: "24/25"})
		if err != nil {
			t.Fatalf("CreateClass() failed: %v", err)
		}
		c := gw.calls[0]
		if c.method != http.MethodPut || c.path != "/teacher-notebook/v1/school/3/classes" {
			t.Errorf("call = %+v", c)
		}
		req, ok := c.body.(ClassRequest)
		if !ok {
			t.Fatalf("body = %T", c.body)
		}
		if req.Name != "Física 11A" || req.SchoolYear != "24/25" {
			t.Errorf("request = %+v", req)
		}
	})

	t.Run("bad school year never reaches the network", func(t *testing.T) {
		svc, gw := newTestService(t)
		_, err := svc.CreateClass(context.Background(), 3, NewClass{Name: "Física 11A", SchoolYear: "24/27"})
		if _, ok := err.(*core.ValidationError); !ok {
			t.Fatalf("CreateClass() error = %T (%v); want *core.ValidationError", err, err)
		}
		if len(gw.calls) != 0 {
			t.Errorf("calls = %+v; want none", gw.calls)
		}
	})
}

func TestServiceUpdateClass(t *testing.T) {
	svc, gw := newTestService(t)
	_, err := svc.UpdateClass(context.Background(), 9, NewClass{Name: "Física 11A", SchoolYear: "24/25"})
	if err != nil {
		t.Fatalf("UpdateClass() failed: %v", err)
	}
	c := gw.calls[0]
	if c.method != http.MethodPatch || c.path != "/teacher-notebook/v1/classes/9" {
		t.Errorf("call = %+v", c)
	}
}

func TestServiceDeleteClass(t *testing.T) {
	svc, gw := newTestService(t)
	if err := svc.DeleteClass(context.Background(), 9); err != nil {
		t.Fatalf("DeleteClass() failed: %v", err)
	}
	c := gw.calls[0]
	if c.method != http.MethodDelete || c.path != "/teacher-notebook/v1/classes/9" {
		t.Errorf("call = %+v", c)
	}
}

// gateway errors pass through untouched
func TestServiceErrorPassthrough(t *testing.T) {
	svc, gw := newTestService(t)
	gw.err = &core.APIError{Code: "404", Description: "NOT_FOUND", Detail: "school not found"}

	_, err := svc.UpdateSchool(context.Background(), 42, NewSchool{Name: "Lincoln High"})
	apiErr, ok := err.(*core.APIError)
	if !ok {
		t.Fatalf("UpdateSchool() error = %T; want *core.APIError", err)
	}
	if apiErr != gw.err {
		t.Errorf("error was reinterpreted: %+v", apiErr)
	}
}
