package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	LangEN = "en"
	LangTR = "tr"

	DefaultLanguage = LangTR
)

//go:embed locales/*.json
var localeFS embed.FS

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Manager holds flat dotted-key message catalogs. Each message is a
// template with {{var}} placeholders, validated when the catalogs load.
type Manager struct {
	locales   map[string]map[string]string
	supported []string
}

func NewManager() (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, entry := range entries {
		language := strings.TrimSuffix(strings.ToLower(entry.Name()), filepath.Ext(entry.Name()))
		content, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}
		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}
		if err := validateMessages(language, messages); err != nil {
			return nil, err
		}
		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	for _, required := range []string{LangEN, LangTR} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}
	if err := validateParity(manager.locales); err != nil {
		return nil, err
	}

	sort.Strings(manager.supported)
	return manager, nil
}

// validateMessages rejects templates with unbalanced or malformed
// placeholder braces so bad catalogs fail at load, not at render.
func validateMessages(language string, messages map[string]string) error {
	for key, template := range messages {
		opens := strings.Count(template, "{{")
		closes := strings.Count(template, "}}")
		matches := len(placeholderPattern.FindAllString(template, -1))
		if opens != closes || opens != matches {
			return fmt.Errorf("locale %s key %q has malformed placeholders", language, key)
		}
	}
	return nil
}

func validateParity(locales map[string]map[string]string) error {
	for language, messages := range locales {
		for other, otherMessages := range locales {
			if language == other {
				continue
			}
			for key := range messages {
				if _, ok := otherMessages[key]; !ok {
					return fmt.Errorf("locale %s is missing key %q present in %s", other, key, language)
				}
			}
		}
	}
	return nil
}

func (m *Manager) SupportedLanguages() []string {
	result := make([]string, len(m.supported))
	copy(result, m.supported)
	return result
}

func (m *Manager) NormalizeLanguage(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		normalized = normalized[:idx]
	}
	if _, ok := m.locales[normalized]; ok {
		return normalized
	}
	return DefaultLanguage
}

// T resolves key in the given language, falling back to the default
// language and finally to the key itself, then substitutes {{var}}
// placeholders from vars.
func (m *Manager) T(language, key string, vars map[string]any) string {
	language = m.NormalizeLanguage(language)
	template, ok := m.locales[language][key]
	if !ok {
		template, ok = m.locales[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return fmt.Sprint(value)
		}
		return match
	})
}
