package i18n

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"tiew/pkg/utils"
)

// Storage is the persisted key/value state of one visitor.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
}

// Store holds the active language and resolves translation keys against a Catalog.
type Store struct {
	mu      sync.RWMutex
	lang    Language
	catalog Catalog
	storage Storage
	log     *zap.Logger
}

// NewStore starts on the default language and switches to the persisted one
// when storage holds a known code. Storage errors are logged and ignored.
func NewStore(ctx context.Context, catalog Catalog, storage Storage, log *zap.Logger) *Store {
	s := &Store{
		lang:    DefaultLanguage(),
		catalog: catalog,
		storage: storage,
		log:     log,
	}

	code, found, err := storage.GetItem(ctx, StorageKey)
	if err != nil {
		log.Warn("reading language preference failed", zap.Error(err))
		return s
	}
	if !found {
		return s
	}
	if lang, ok := ParseLanguage(code); ok {
		s.lang = lang
	} else {
		log.Debug("ignoring unknown persisted language", zap.String("code", code))
	}
	return s
}

func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches the active language and persists it.
func (s *Store) SetLanguage(ctx context.Context, lang Language) error {
	if _, ok := ParseLanguage(string(lang)); !ok {
		return utils.ErrUnknownLanguage
	}

	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()

	return s.storage.SetItem(ctx, StorageKey, string(lang))
}

// T returns the translation for key in the active language, or key itself.
func (s *Store) T(key string) string {
	lang := s.Language()
	if v, ok := s.catalog[lang][key]; ok {
		return v
	}
	return key
}

// Translations returns a copy of the active language table.
func (s *Store) Translations() map[string]string {
	table := s.catalog[s.Language()]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
