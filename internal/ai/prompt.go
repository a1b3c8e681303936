// internal/ai/prompt.go
package ai

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/descg/descg-backend/internal/models"
)

// ProductSnapshot carries the product attributes the prompt embeds.
type ProductSnapshot struct {
	Name     string
	Category string
	Features []string
	Keywords []string
}

// PromptOptions are the resolved generation options. PriorTexts holds up to
// three previously generated descriptions, newest first, used to steer the
// provider away from repeating itself.
type PromptOptions struct {
	Tone       models.Tone
	Length     models.Length
	Language   models.Language
	PriorTexts []string
}

// Prompt is a built instruction plus the token budget derived from the
// requested length.
type Prompt struct {
	Text      string
	MaxTokens int
}

const maxPriorTexts = 3

var lengthTokens = map[models.Length]int{
	models.LengthShort:  150,
	models.LengthMedium: 300,
	models.LengthLong:   500,
}

var lengthParagraphsEN = map[models.Length]string{
	models.LengthShort:  "1-2 short paragraphs",
	models.LengthMedium: "3-4 paragraphs",
	models.LengthLong:   "5-6 paragraphs",
}

var lengthParagraphsAR = map[models.Length]string{
	models.LengthShort:  "فقرة إلى فقرتين قصيرتين",
	models.LengthMedium: "3-4 فقرات",
	models.LengthLong:   "5-6 فقرات",
}

var toneEN = map[models.Tone]string{
	models.ToneProfessional: "professional and trustworthy",
	models.ToneFriendly:     "friendly and approachable",
	models.ToneCasual:       "casual and conversational",
	models.ToneLuxury:       "luxurious and premium",
	models.TonePlayful:      "playful and fun",
	models.ToneEmotional:    "warm and emotional",
}

var toneAR = map[models.Tone]string{
	models.ToneProfessional: "احترافية وموثوقة",
	models.ToneFriendly:     "ودودة وقريبة من القارئ",
	models.ToneCasual:       "عفوية وبسيطة",
	models.ToneLuxury:       "فاخرة وراقية",
	models.TonePlayful:      "مرحة وخفيفة",
	models.ToneEmotional:    "دافئة وعاطفية",
}

// focusAngles bias regenerations toward a different selling angle. One is
// picked uniformly at random whenever prior texts exist.
var focusAngles = []struct {
	en string
	ar string
}{
	{
		en: "focus on the emotional benefits the customer gains",
		ar: "ركز على الفوائد العاطفية التي يحصل عليها العميل",
	},
	{
		en: "focus on the technical specifications and build quality",
		ar: "ركز على المواصفات التقنية وجودة التصنيع",
	},
	{
		en: "focus on how the product fits into the customer's daily lifestyle",
		ar: "ركز على كيف يندمج المنتج في الحياة اليومية للعميل",
	},
	{
		en: "focus on what makes this product stand out from competitors",
		ar: "ركز على ما يميز هذا المنتج عن المنافسين",
	},
	{
		en: "focus on the problems this product solves for the customer",
		ar: "ركز على المشكلات التي يحلها هذا المنتج للعميل",
	},
}

// BuildPrompt constructs the generation instruction for a product. The output
// embeds a millisecond timestamp tag that perturbs the provider's sampling;
// Clean strips it back out of the generated text.
func BuildPrompt(product ProductSnapshot, opts PromptOptions) Prompt {
	if !opts.Tone.Valid() {
		opts.Tone = models.ToneProfessional
	}
	if !opts.Length.Valid() {
		opts.Length = models.LengthMedium
	}
	if len(opts.PriorTexts) > maxPriorTexts {
		opts.PriorTexts = opts.PriorTexts[:maxPriorTexts]
	}

	var b strings.Builder

	switch opts.Language {
	case models.LanguageArabic:
		writeArabicPrompt(&b, product, opts)
	case models.LanguageEnglish:
		writeEnglishPrompt(&b, product, opts)
	default:
		// Unrecognized values behave like "both".
		writeBilingualPrompt(&b, product, opts)
	}

	writeUniquenessDirective(&b, opts)

	fmt.Fprintf(&b, "\n\nGeneration ID: %d - internal tag, never mention it in the output.",
		time.Now().UnixMilli())

	return Prompt{
		Text:      b.String(),
		MaxTokens: lengthTokens[opts.Length],
	}
}

func writeEnglishPrompt(b *strings.Builder, product ProductSnapshot, opts PromptOptions) {
	fmt.Fprintf(b, "Write a marketing product description in English for %q.\n", product.Name)
	if product.Category != "" {
		fmt.Fprintf(b, "Category: %s\n", product.Category)
	}
	if len(product.Features) > 0 {
		fmt.Fprintf(b, "Key features: %s\n", strings.Join(product.Features, ", "))
	}
	if len(product.Keywords) > 0 {
		fmt.Fprintf(b, "Keywords to weave in naturally: %s\n", strings.Join(product.Keywords, ", "))
	}
	fmt.Fprintf(b, "Tone: %s.\n", toneEN[opts.Tone])
	fmt.Fprintf(b, "Target length: %s.\n", lengthParagraphsEN[opts.Length])
	b.WriteString(englishFormatRules)
}

func writeArabicPrompt(b *strings.Builder, product ProductSnapshot, opts PromptOptions) {
	fmt.Fprintf(b, "اكتب وصفاً تسويقياً باللغة العربية للمنتج \"%s\".\n", product.Name)
	if product.Category != "" {
		fmt.Fprintf(b, "الفئة: %s\n", product.Category)
	}
	if len(product.Features) > 0 {
		fmt.Fprintf(b, "أهم المزايا: %s\n", strings.Join(product.Features, "، "))
	}
	if len(product.Keywords) > 0 {
		fmt.Fprintf(b, "كلمات مفتاحية تُدمج بشكل طبيعي: %s\n", strings.Join(product.Keywords, "، "))
	}
	fmt.Fprintf(b, "النبرة: %s.\n", toneAR[opts.Tone])
	fmt.Fprintf(b, "الطول المطلوب: %s.\n", lengthParagraphsAR[opts.Length])
	b.WriteString(arabicFormatRules)
}

func writeBilingualPrompt(b *strings.Builder, product ProductSnapshot, opts PromptOptions) {
	fmt.Fprintf(b, "Write a marketing product description for %q in BOTH Arabic and English.\n", product.Name)
	if product.Category != "" {
		fmt.Fprintf(b, "Category: %s\n", product.Category)
	}
	if len(product.Features) > 0 {
		fmt.Fprintf(b, "Key features: %s\n", strings.Join(product.Features, ", "))
	}
	if len(product.Keywords) > 0 {
		fmt.Fprintf(b, "Keywords to weave in naturally: %s\n", strings.Join(product.Keywords, ", "))
	}
	fmt.Fprintf(b, "Tone: %s / %s.\n", toneEN[opts.Tone], toneAR[opts.Tone])
	fmt.Fprintf(b, "Target length per language: %s.\n", lengthParagraphsEN[opts.Length])
	b.WriteString(bilingualFormatRules)
}

func writeUniquenessDirective(b *strings.Builder, opts PromptOptions) {
	if len(opts.PriorTexts) == 0 {
		return
	}

	b.WriteString("\nThis product already has previous descriptions. Write something clearly different: avoid repeating the wording, opening lines, and structure of these earlier versions:\n")
	for i, prior := range opts.PriorTexts {
		fmt.Fprintf(b, "--- previous version %d ---\n%s\n", i+1, prior)
	}

	angle := focusAngles[rand.Intn(len(focusAngles))]
	switch opts.Language {
	case models.LanguageArabic:
		fmt.Fprintf(b, "لهذه النسخة، %s.\n", angle.ar)
	case models.LanguageEnglish:
		fmt.Fprintf(b, "For this version, %s.\n", angle.en)
	default:
		fmt.Fprintf(b, "For this version, %s. لهذه النسخة، %s.\n", angle.en, angle.ar)
	}
}

const englishFormatRules = `Formatting rules:
- Plain text only, no markdown symbols of any kind.
- Short paragraphs separated by blank lines.
- Start with a single attention-grabbing opening line.
- Cover 3-4 concrete benefits.
- End with a clear call to action.
`

const arabicFormatRules = `قواعد التنسيق:
- نص عادي فقط بدون أي رموز تنسيق.
- فقرات قصيرة تفصل بينها أسطر فارغة.
- ابدأ بجملة افتتاحية واحدة تلفت الانتباه.
- اذكر 3-4 فوائد ملموسة.
- اختم بدعوة واضحة لاتخاذ إجراء.
`

const bilingualFormatRules = `Formatting rules:
- Plain text only, no markdown symbols of any kind.
- Write the Arabic section first under the line "العربية:", then the English section under the line "English:".
- Short paragraphs separated by blank lines in each section.
- Each section starts with a single attention-grabbing opening line.
- Each section covers 3-4 concrete benefits.
- Each section ends with a clear call to action.
`
