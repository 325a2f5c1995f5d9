package i18n

import "testing"

func TestTranslation(t *testing.T) {
	SetLanguage(LangEnglish)
	if got := T(ErrVarNotDeclared, "y"); got != "Variable 'y' is not declared" {
		t.Errorf("en: got %q", got)
	}

	SetLanguage(LangChinese)
	if got := T(ErrVarNotDeclared, "y"); got != "变量 'y' 未声明" {
		t.Errorf("zh: got %q", got)
	}

	SetLanguage(LangEnglish)
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	SetLanguage(LangEnglish)
	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("got %q, want the key itself", got)
	}
}

func TestAllKeysHaveBothTranslations(t *testing.T) {
	for key := range enMessages {
		if _, ok := zhMessages[key]; !ok {
			t.Errorf("key %s has no Chinese translation", key)
		}
	}
	for key := range zhMessages {
		if _, ok := enMessages[key]; !ok {
			t.Errorf("key %s has no English translation", key)
		}
	}
}

func TestParseLanguageCode(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"zh_CN.UTF-8", LangChinese},
		{"zh-TW", LangChinese},
		{"en_US", LangEnglish},
		{"en", LangEnglish},
		{"fr_FR", ""},
	}
	for _, tt := range tests {
		if got := parseLanguageCode(tt.code); got != tt.want {
			t.Errorf("parseLanguageCode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
