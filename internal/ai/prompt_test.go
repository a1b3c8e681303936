// internal/ai/prompt_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/descg/descg-backend/internal/models"
)

func TestBuildPromptEnglish(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{
		Name:     "Wireless Headphones",
		Category: "Electronics",
		Features: []string{"40h battery", "Noise cancellation"},
		Keywords: []string{"bluetooth", "wireless"},
	}, PromptOptions{
		Tone:     models.ToneProfessional,
		Length:   models.LengthMedium,
		Language: models.LanguageEnglish,
	})

	assert.Contains(t, p.Text, `"Wireless Headphones"`)
	assert.Contains(t, p.Text, "Category: Electronics")
	assert.Contains(t, p.Text, "40h battery, Noise cancellation")
	assert.Contains(t, p.Text, "bluetooth, wireless")
	assert.Contains(t, p.Text, "professional and trustworthy")
	assert.Contains(t, p.Text, "3-4 paragraphs")
	assert.Contains(t, p.Text, "Generation ID:")
	assert.Equal(t, 300, p.MaxTokens)
}

func TestBuildPromptArabic(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "ساعة ذكية"}, PromptOptions{
		Tone:     models.ToneLuxury,
		Length:   models.LengthShort,
		Language: models.LanguageArabic,
	})

	assert.Contains(t, p.Text, "اكتب وصفاً تسويقياً باللغة العربية")
	assert.Contains(t, p.Text, "ساعة ذكية")
	assert.Contains(t, p.Text, "فاخرة وراقية")
	assert.Equal(t, 150, p.MaxTokens)
}

func TestBuildPromptBilingualHasSectionMarkers(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Coffee Maker"}, PromptOptions{
		Tone:     models.ToneFriendly,
		Length:   models.LengthLong,
		Language: models.LanguageBoth,
	})

	assert.Contains(t, p.Text, "BOTH Arabic and English")
	assert.Contains(t, p.Text, "العربية:")
	assert.Contains(t, p.Text, "English:")
	assert.Equal(t, 500, p.MaxTokens)
}

func TestBuildPromptUnknownLanguageBehavesLikeBoth(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Desk Lamp"}, PromptOptions{
		Tone:     models.ToneCasual,
		Length:   models.LengthMedium,
		Language: models.Language("french"),
	})

	assert.Contains(t, p.Text, "BOTH Arabic and English")
}

func TestBuildPromptOmitsEmptyAttributes(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Plain Mug"}, PromptOptions{
		Tone:     models.ToneProfessional,
		Length:   models.LengthMedium,
		Language: models.LanguageEnglish,
	})

	assert.NotContains(t, p.Text, "Category:")
	assert.NotContains(t, p.Text, "Key features:")
	assert.NotContains(t, p.Text, "Keywords")
}

func TestBuildPromptDefaultsInvalidToneAndLength(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Mug"}, PromptOptions{
		Tone:     models.Tone("shouty"),
		Length:   models.Length("enormous"),
		Language: models.LanguageEnglish,
	})

	assert.Contains(t, p.Text, "professional and trustworthy")
	assert.Contains(t, p.Text, "3-4 paragraphs")
	assert.Equal(t, 300, p.MaxTokens)
}

func TestBuildPromptWithPriorTexts(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Backpack"}, PromptOptions{
		Tone:       models.ToneProfessional,
		Length:     models.LengthMedium,
		Language:   models.LanguageEnglish,
		PriorTexts: []string{"First description.", "Second description."},
	})

	assert.Contains(t, p.Text, "previous version 1")
	assert.Contains(t, p.Text, "First description.")
	assert.Contains(t, p.Text, "previous version 2")
	assert.Contains(t, p.Text, "Second description.")
	assert.Contains(t, p.Text, "For this version,")
}

func TestBuildPromptCapsPriorTexts(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Backpack"}, PromptOptions{
		Tone:       models.ToneProfessional,
		Length:     models.LengthMedium,
		Language:   models.LanguageEnglish,
		PriorTexts: []string{"one", "two", "three", "four"},
	})

	assert.Contains(t, p.Text, "previous version 3")
	assert.NotContains(t, p.Text, "previous version 4")
}

func TestBuildPromptNoUniquenessDirectiveWithoutPriors(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Backpack"}, PromptOptions{
		Tone:     models.ToneProfessional,
		Length:   models.LengthMedium,
		Language: models.LanguageEnglish,
	})

	assert.NotContains(t, p.Text, "previous version")
}

func TestBuildPromptTagIsStrippableByClean(t *testing.T) {
	p := BuildPrompt(ProductSnapshot{Name: "Mug"}, PromptOptions{
		Tone:     models.ToneProfessional,
		Length:   models.LengthMedium,
		Language: models.LanguageEnglish,
	})

	// A provider echoing the whole tag line back must leave no trace after
	// cleanup.
	assert.NotContains(t, Clean("Nice mug.\n\nGeneration ID: 123 - internal tag, never mention it in the output."), "Generation ID:")
	assert.Contains(t, p.Text, "Generation ID:")
}
