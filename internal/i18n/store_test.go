package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tiew/pkg/utils"
)

type mapStorage struct {
	items  map[string]string
	getErr error
}

func newMapStorage() *mapStorage { return &mapStorage{items: map[string]string{}} }

func (m *mapStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *mapStorage) SetItem(_ context.Context, key, value string) error {
	m.items[key] = value
	return nil
}

func TestTranslateDefaultsToThai(t *testing.T) {
	s := NewStore(context.Background(), DefaultCatalog(), newMapStorage(), zap.NewNop())

	assert.Equal(t, Thai, s.Language())
	assert.Equal(t, "หน้าแรก", s.T("nav.home"))
}

func TestTranslateAfterSwitchingToEnglish(t *testing.T) {
	s := NewStore(context.Background(), DefaultCatalog(), newMapStorage(), zap.NewNop())

	require.NoError(t, s.SetLanguage(context.Background(), English))

	assert.Equal(t, "Home", s.T("nav.home"))
}

func TestTranslateMissingKeyReturnsKey(t *testing.T) {
	s := NewStore(context.Background(), DefaultCatalog(), newMapStorage(), zap.NewNop())

	for _, lang := range Languages {
		require.NoError(t, s.SetLanguage(context.Background(), lang))
		assert.Equal(t, "nonexistent.key", s.T("nonexistent.key"))
	}
}

func TestLanguagePersistsAcrossStores(t *testing.T) {
	storage := newMapStorage()
	first := NewStore(context.Background(), DefaultCatalog(), storage, zap.NewNop())

	require.NoError(t, first.SetLanguage(context.Background(), Languages[1]))
	assert.Equal(t, "en", storage.items[StorageKey])

	second := NewStore(context.Background(), DefaultCatalog(), storage, zap.NewNop())
	assert.Equal(t, Languages[1], second.Language())
}

func TestInvalidPersistedLanguageFallsBackToDefault(t *testing.T) {
	storage := newMapStorage()
	storage.items[StorageKey] = "fr"

	s := NewStore(context.Background(), DefaultCatalog(), storage, zap.NewNop())

	assert.Equal(t, DefaultLanguage(), s.Language())
}

func TestStorageErrorFallsBackToDefault(t *testing.T) {
	storage := newMapStorage()
	storage.getErr = errors.New("db down")

	s := NewStore(context.Background(), DefaultCatalog(), storage, zap.NewNop())

	assert.Equal(t, Thai, s.Language())
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	storage := newMapStorage()
	s := NewStore(context.Background(), DefaultCatalog(), storage, zap.NewNop())

	err := s.SetLanguage(context.Background(), Language("de"))

	assert.ErrorIs(t, err, utils.ErrUnknownLanguage)
	assert.Equal(t, Thai, s.Language())
	assert.Empty(t, storage.items)
}

func TestCatalogsShareKeys(t *testing.T) {
	catalog := DefaultCatalog()
	for key := range catalog[Thai] {
		_, ok := catalog[English][key]
		assert.True(t, ok, "missing english translation for %s", key)
	}
	assert.Len(t, catalog[English], len(catalog[Thai]))
}

func TestCatalogNamesConfiguredProvince(t *testing.T) {
	catalog := NewCatalog("ขอนแก่น", "Khon Kaen")

	assert.Equal(t, "เที่ยวขอนแก่น", catalog[Thai]["site.name"])
	assert.Equal(t, "Visit Khon Kaen", catalog[English]["site.name"])
	assert.Equal(t, "Feel the charm of Khon Kaen", catalog[English]["hero.title"])
	for lang, table := range catalog {
		for key, value := range table {
			assert.NotContains(t, value, provincePlaceholder, "%s %s", lang, key)
			assert.NotContains(t, value, "Chiang Mai", "%s %s", lang, key)
			assert.NotContains(t, value, "เชียงใหม่", "%s %s", lang, key)
		}
	}
}

func TestCatalogWithoutThaiNameUsesEnglish(t *testing.T) {
	catalog := NewCatalog("", "Nan")

	assert.Equal(t, "เที่ยวNan", catalog[Thai]["site.name"])
}
