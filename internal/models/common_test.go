// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"ar":      LanguageArabic,
		"arabic":  LanguageArabic,
		"العربية": LanguageArabic,
		"en":      LanguageEnglish,
		"english": LanguageEnglish,
		"English": LanguageEnglish,
		"both":    LanguageBoth,
		"كلاهما":  LanguageBoth,
		"":        LanguageBoth,
		"french":  LanguageBoth,
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseLanguage(input), "input %q", input)
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, ToneLuxury.Valid())
	assert.False(t, Tone("shouty").Valid())

	assert.True(t, LengthShort.Valid())
	assert.False(t, Length("enormous").Valid())

	assert.True(t, ProviderGemini.Valid())
	assert.False(t, Provider("openai").Valid())
}

func TestJSONBRoundTrip(t *testing.T) {
	original := JSONB{"model": "deepseek-chat", "max_tokens": float64(300)}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned JSONB
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestJSONBNil(t *testing.T) {
	var j JSONB

	value, err := j.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	var scanned JSONB
	assert.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}
