package locale

import "github.com/pkg/errors"

// Locale is the two-letter UI language selector.
type Locale string

const (
	ES Locale = "es"
	EN Locale = "en"
)

// Default is the locale used when no valid preference has been persisted.
const Default = ES

var ErrInvalidLocale = errors.New("invalid locale")

func (l Locale) Valid() bool {
	return l == ES || l == EN
}

func (l Locale) String() string {
	return string(l)
}

type (
	// Store durably persists the locale preference across restarts.
	Store interface {
		ReadLocale() (string, error)
		WriteLocale(locale string) error
	}

	// Resolver exposes the currently selected UI language. It is read by
	// every outbound request and by UI text lookup; writes take effect
	// immediately for all subsequent reads.
	Resolver struct {
		store Store
	}
)

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Get returns the persisted locale, or the default when unset or invalid.
func (r *Resolver) Get() Locale {
	val, err := r.store.ReadLocale()
	if err != nil {
		return Default
	}
	if loc := Locale(val); loc.Valid() {
		return loc
	}
	return Default
}

// Set persists the given locale before returning, so any subsequent read
// observes it.
func (r *Resolver) Set(loc Locale) error {
	if !loc.Valid() {
		return ErrInvalidLocale
	}
	if err := r.store.WriteLocale(loc.String()); err != nil {
		return errors.Wrap(err, "persisting locale")
	}
	return nil
}
