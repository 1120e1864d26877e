package state

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/codefm/teachernotebook/core/locale"
)

const localeFile = "locale.json"

type localePrefs struct {
	Locale string `json:"locale"`
}

// LocaleStore keeps the locale preference in a small JSON file under the
// configured state directory.
type LocaleStore struct {
	mutex sync.Mutex
	path  string
}

var _ locale.Store = (*LocaleStore)(nil)

func NewLocaleStore(dir string) *LocaleStore {
	return &LocaleStore{path: filepath.Join(dir, localeFile)}
}

// ReadLocale returns "" (not an error) when no preference has been saved yet.
func (store *LocaleStore) ReadLocale() (string, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	data, err := ioutil.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %s", store.path)
	}
	var prefs localePrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		return "", nil // corrupt file reads as unset
	}
	return prefs.Locale, nil
}

func (store *LocaleStore) WriteLocale(loc string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(store.path))
	}
	data, err := json.Marshal(localePrefs{Locale: loc})
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(store.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "writing %s", store.path)
	}
	return nil
}
