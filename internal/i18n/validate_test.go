package i18n

import "testing"

func TestValidateMessagesRejectsMalformedPlaceholders(t *testing.T) {
	t.Parallel()
	bad := []map[string]string{
		{"k": "Hello, {{name!"},
		{"k": "Hello, name}}!"},
		{"k": "Hello, {{first name}}!"},
		{"k": "{{a}} and {{b"},
	}
	for i, messages := range bad {
		if err := validateMessages("en", messages); err == nil {
			t.Errorf("case %d: expected malformed placeholder error", i)
		}
	}

	good := map[string]string{
		"plain":  "No placeholders here",
		"simple": "Hello, {{name}}!",
		"spaced": "Hello, {{ name }}!",
		"two":    "{{a}} and {{b}}",
	}
	if err := validateMessages("en", good); err != nil {
		t.Errorf("expected valid templates to pass, got %v", err)
	}
}

func TestValidateParityCatchesMissingKeys(t *testing.T) {
	t.Parallel()
	locales := map[string]map[string]string{
		"en": {"greeting": "Hello", "farewell": "Bye"},
		"tr": {"greeting": "Merhaba"},
	}
	if err := validateParity(locales); err == nil {
		t.Fatalf("expected missing key to fail parity check")
	}
}
