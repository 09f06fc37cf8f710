package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocales(t *testing.T) {
	require.NoError(t, Initialize())

	assert.ElementsMatch(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
	assert.Equal(t, "Invalid product ID", T("en", KeyProductInvalidID))
	assert.Equal(t, "無效的商品 ID", T("zh_TW", KeyProductInvalidID))
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))
	assert.Equal(t,
		"Product ID in path (5) does not match ID in body (7)",
		T("en", KeyProductIDMismatch, int64(5), int64(7)))
}

func TestFallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json":    {Data: []byte(`{"greeting":"hello","only.en":"english"}`)},
		"locales/zh_TW.json": {Data: []byte(`{"greeting":"你好"}`)},
	}

	i := &I18n{translations: map[string]map[string]string{}, defaultLang: "en"}
	require.NoError(t, i.LoadTranslations(fsys, "locales"))

	assert.Equal(t, "你好", i.T("zh_TW", "greeting"))
	assert.Equal(t, "english", i.T("zh_TW", "only.en"))
	assert.Equal(t, "english", i.T("fr", "only.en"))
	assert.Equal(t, "missing.key", i.T("en", "missing.key"))
}

func TestLoadTranslationsRejectsBadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json": {Data: []byte(`{not json`)},
	}

	i := &I18n{translations: map[string]map[string]string{}, defaultLang: "en"}
	assert.Error(t, i.LoadTranslations(fsys, "locales"))
}
