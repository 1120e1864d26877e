package i18n

import (
	"testing"

	"github.com/codefm/teachernotebook/core/locale"
)

func TestT(t *testing.T) {
	tests := []struct {
		name string
		loc  locale.Locale
		key  string
		want string
	}{
		{
			name: "spanish text",
			loc:  locale.ES,
			key:  "login.errors.sessionExpired",
			want: "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
		},
		{
			name: "english text",
			loc:  locale.EN,
			key:  "login.errors.sessionExpired",
			want: "Your session has expired. Please log in again.",
		},
		{
			name: "unknown key returned as is",
			loc:  locale.ES,
			key:  "nope.not.here",
			want: "nope.not.here",
		},
		{
			name: "unknown locale returned as key",
			loc:  locale.Locale("fr"),
			key:  "login.errors.sessionExpired",
			want: "login.errors.sessionExpired",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.loc, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q; want %q", tt.loc, tt.key, got, tt.want)
			}
		})
	}
}

// every catalog entry carries both languages
func TestCatalogComplete(t *testing.T) {
	seen := make(map[string]bool, len(catalog))
	for _, e := range catalog {
		if e.key == "" || e.es == "" || e.en == "" {
			t.Errorf("catalog entry %+v is incomplete", e)
		}
		if seen[e.key] {
			t.Errorf("catalog key %q is duplicated", e.key)
		}
		seen[e.key] = true
	}
}
