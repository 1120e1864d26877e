package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/school"
)

var jwtSecret = []byte("notebook-tests")

// Claims carried by the bearer tokens the fake backend issues.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
}

type account struct {
	name string
	hash []byte
}

// APIServer emulates the remote Teacher Notebook backend: Basic-Auth login
// issuing bearer tokens, and the schools/classes resources guarded by them.
// Errors are returned in the backend's structured {code, description,
// detail, details} shape.
type APIServer struct {
	URL string

	srv *httptest.Server

	mutex    sync.Mutex
	accounts map[string]account
	schools  map[int]*school.School
	nextID   int
}

func NewAPIServer(t *testing.T) *APIServer {
	s := &APIServer{
		accounts: make(map[string]account),
		schools:  make(map[int]*school.School),
	}

	e := echo.New()
	e.HTTPErrorHandler = s.errorHandler
	e.POST("/public/auth/login", s.login)

	v1 := e.Group("/teacher-notebook/v1", middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey:    jwtSecret,
		SigningMethod: middleware.AlgorithmHS256,
		Claims:        new(Claims),
	}))
	v1.GET("/schools", s.listSchools)
	v1.PUT("/schools", s.createSchool)
	v1.PATCH("/schools/:id", s.updateSchool)
	v1.DELETE("/schools/:id", s.deleteSchool)
	v1.PUT("/school/:schoolId/classes", s.createClass)
	v1.PATCH("/classes/:id", s.updateClass)
	v1.DELETE("/classes/:id", s.deleteClass)

	s.srv = httptest.NewServer(e)
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// AddAccount registers a login account on the fake backend.
func (s *APIServer) AddAccount(t *testing.T, username, name, pwd string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.accounts[username] = account{name: name, hash: hash}
}

// Token returns a valid bearer token for username, bypassing login.
func (s *APIServer) Token(t *testing.T, username string) string {
	token, err := makeToken(username)
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	return token
}

// Schools returns a snapshot of the stored schools.
func (s *APIServer) Schools() []school.School {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	schools := make([]school.School, 0, len(s.schools))
	for _, sch := range s.schools {
		schools = append(schools, *sch)
	}
	return schools
}

func makeToken(username string) (string, error) {
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Username: username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// Handlers

func (s *APIServer) login(ctx echo.Context) error {
	username, pwd, ok := ctx.Request().BasicAuth()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown user")
	}

	s.mutex.Lock()
	acc, found := s.accounts[username]
	s.mutex.Unlock()

	if !found || bcrypt.CompareHashAndPassword(acc.hash, []byte(pwd)) != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown user")
	}

	token, err := makeToken(username)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"userName":    acc.name,
		"accessToken": token,
	})
}

func (s *APIServer) listSchools(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.Schools())
}

func (s *APIServer) createSchool(ctx echo.Context) error {
	var data school.SchoolRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := validateSchool(data); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.nextID++
	sch := &school.School{ID: s.nextID, Name: data.Name, Town: data.Town, Tlf: data.Tlf}
	s.schools[sch.ID] = sch
	return ctx.JSON(http.StatusOK, sch)
}

func (s *APIServer) updateSchool(ctx echo.Context) error {
	id, _ := strconv.Atoi(ctx.Param("id"))
	var data school.SchoolRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}
	if err := validateSchool(data); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	sch, found := s.schools[id]
	if !found {
		return notFoundError("school not found")
	}
	sch.Name, sch.Town, sch.Tlf = data.Name, data.Town, data.Tlf
	return ctx.JSON(http.StatusOK, sch)
}

func (s *APIServer) deleteSchool(ctx echo.Context) error {
	id, _ := strconv.Atoi(ctx.Param("id"))

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, found := s.schools[id]; !found {
		return notFoundError("school not found")
	}
	delete(s.schools, id)
	return ctx.NoContent(http.StatusNoContent)
}

func (s *APIServer) createClass(ctx echo.Context) error {
	schoolID, _ := strconv.Atoi(ctx.Param("schoolId"))
	var data school.ClassRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	sch, found := s.schools[schoolID]
	if !found {
		return notFoundError("school not found")
	}
	s.nextID++
	cls := school.Class{ID: s.nextID, SchoolID: schoolID, Name: data.Name, SchoolYear: data.SchoolYear}
	sch.Classes = append(sch.Classes, cls)
	return ctx.JSON(http.StatusOK, cls)
}

func (s *APIServer) updateClass(ctx echo.Context) error {
	id, _ := strconv.Atoi(ctx.Param("id"))
	var data school.ClassRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, sch := range s.schools {
		for i := range sch.Classes {
			if sch.Classes[i].ID == id {
				sch.Classes[i].Name = data.Name
				sch.Classes[i].SchoolYear = data.SchoolYear
				return ctx.JSON(http.StatusOK, sch.Classes[i])
			}
		}
	}
	return notFoundError("class not found")
}

func (s *APIServer) deleteClass(ctx echo.Context) error {
	id, _ := strconv.Atoi(ctx.Param("id"))

	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, sch := range s.schools {
		for i := range sch.Classes {
			if sch.Classes[i].ID == id {
				sch.Classes = append(sch.Classes[:i], sch.Classes[i+1:]...)
				return ctx.NoContent(http.StatusNoContent)
			}
		}
	}
	return notFoundError("class not found")
}

// Errors

type apiError struct {
	code int
	body core.APIError
}

func (e *apiError) Error() string { return e.body.Error() }

func notFoundError(detail string) error {
	return &apiError{
		code: http.StatusNotFound,
		body: core.APIError{Code: "404", Description: "NOT_FOUND", Detail: detail},
	}
}

func validateSchool(data school.SchoolRequest) error {
	if len(data.Name) < 5 {
		return &apiError{
			code: http.StatusBadRequest,
			body: core.APIError{
				Code:        "400",
				Description: "VALIDATION_ERROR",
				Details: []core.APIFieldDetail{
					{Field: "name", Reason: "must be at least 5 characters"},
				},
			},
		}
	}
	return nil
}

func (s *APIServer) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var code int
	var body core.APIError
	switch origErr := err.(type) {
	case *apiError:
		code = origErr.code
		body = origErr.body
	case *echo.HTTPError:
		code = origErr.Code
		body = core.APIError{
			Code:        strconv.Itoa(origErr.Code),
			Description: fmt.Sprint(origErr.Message),
		}
	default:
		code = http.StatusInternalServerError
		body = core.APIError{Code: "500", Description: "INTERNAL", Detail: err.Error()}
	}

	if err := ctx.JSON(code, body); err != nil {
		ctx.Echo().Logger.Error(err)
	}
}
