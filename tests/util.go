package testutil

import (
	"io/ioutil"
	"log"

	"github.com/codefm/teachernotebook/core"
	"github.com/codefm/teachernotebook/core/locale"
	logsvc "github.com/codefm/teachernotebook/services/logger"
)

// MemLocaleStore is an in-memory locale.Store for tests.
type MemLocaleStore struct {
	Val string
}

var _ locale.Store = (*MemLocaleStore)(nil)

func (s *MemLocaleStore) ReadLocale() (string, error)  { return s.Val, nil }
func (s *MemLocaleStore) WriteLocale(val string) error { s.Val = val; return nil }

// NewLocaleResolver returns a resolver pre-seeded with the given locale.
func NewLocaleResolver(loc locale.Locale) *locale.Resolver {
	return locale.NewResolver(&MemLocaleStore{Val: loc.String()})
}

// NewLogger returns a logger that swallows all output.
func NewLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0), false)
}
