package i18n

import (
	"os"
	"strings"

	"github.com/revisit-app/revisit/internal/models"
)

// Translator resolves dotted display-text keys for one language. Lookup of a
// missing key echoes the key back; it never fails.
type Translator struct {
	lang models.Language
	dict map[string]string
}

func New(lang models.Language) *Translator {
	lang = models.NormalizeLanguage(lang)
	d := norwegian
	if lang == models.LangEnglish {
		d = english
	}
	return &Translator{lang: lang, dict: d}
}

func (t *Translator) Lang() models.Language {
	return t.lang
}

// T returns the display string for a dotted key, or the key itself if the
// key is unknown.
func (t *Translator) T(key string) string {
	if s, ok := t.dict[key]; ok {
		return s
	}
	return key
}

// Tf is T with "{{name}}" placeholder substitution.
func (t *Translator) Tf(key string, vars map[string]string) string {
	s := t.T(key)
	for k, v := range vars {
		s = strings.ReplaceAll(s, "{{"+k+"}}", v)
	}
	return s
}

// DetectLanguage maps a BCP-47 language tag to a supported language.
// Norwegian variants (nb, nn, no) map to Norwegian; everything else,
// English.
func DetectLanguage(tag string) models.Language {
	tag = strings.ToLower(tag)
	if strings.HasPrefix(tag, "nb") || strings.HasPrefix(tag, "nn") || strings.HasPrefix(tag, "no") {
		return models.LangNorwegian
	}
	return models.LangEnglish
}

// DeviceLanguage detects the language from the process locale environment
// (LC_ALL, then LANG), the closest CLI analog to a device locale.
func DeviceLanguage() models.Language {
	for _, env := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return DetectLanguage(v)
		}
	}
	return models.LangEnglish
}
