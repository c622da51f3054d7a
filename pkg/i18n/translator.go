package i18n

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no option selects another one.
const DefaultLanguage = "en"

//go:embed locales/validation.yaml
var validationYAML []byte

var defaultTranslator = sync.OnceValue(func() *Translator {
	translations, err := ParseYAML(validationYAML)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded messages: %v", err))
	}
	t, err := NewTranslator(translations)
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded messages: %v", err))
	}
	return t
})

// Default returns the shared Translator over the embedded validation messages.
func Default() *Translator {
	return defaultTranslator()
}

// Translator looks up messages by language and dot-separated key. It is
// read-only after construction and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	tags           []language.Tag
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used for unmatched requests and
// missing keys.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for missing translation reports.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every key that falls
// back. It is off by default.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// NewTranslator builds a Translator. The default language must be present.
func NewTranslator(translations map[string]map[string]any, options ...Option) (*Translator, error) {
	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q", ErrNoTranslations, t.defaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	t.langs = append([]string{t.defaultLang}, slices.DeleteFunc(slices.Sorted(maps.Keys(translations)), func(l string) bool {
		return l == t.defaultLang
	})...)
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrFailedToParseYAML, lang, err)
		}
		t.tags = append(t.tags, tag)
	}
	t.matcher = language.NewMatcher(t.tags)
	return t, nil
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match returns the loaded language that best serves lang, which may be a
// BCP 47 tag or an Accept-Language header value.
func (t *Translator) Match(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, idx, _ := t.matcher.Match(tags...)
	return t.langs[idx]
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// T translates key for lang, filling %{name} placeholders from values. It
// falls back to the default language and then to the key itself.
func (t *Translator) T(lang, key string, values map[string]any) string {
	lang = t.Match(lang)
	tmpl, ok := t.message(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.message(t.defaultLang, key)
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		tmpl = key
	}
	return namedSprintf(tmpl, values)
}

func (t *Translator) message(lang, key string) (string, bool) {
	val, ok := lookup(t.translations[lang], key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// lookup walks nested maps along a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func namedSprintf(tmpl string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := values[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
