package locale

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "zh", want: LanguageChinese},
		{input: "zh-CN", want: LanguageChinese},
		{input: "ZH_hans", want: LanguageChinese},
		{input: "en", want: LanguageEnglish},
		{input: "en-US", want: LanguageEnglish},
		{input: "fr", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeLanguage(tc.input); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		explicit string
		accept   string
		fallback string
		want     string
	}{
		{explicit: "zh", accept: "en-US", fallback: "en", want: LanguageChinese},
		{explicit: "fr", accept: "zh-CN,zh;q=0.9", fallback: "en", want: LanguageChinese},
		{explicit: "", accept: "fr-FR", fallback: "zh", want: LanguageChinese},
		{explicit: "", accept: "", fallback: "", want: LanguageEnglish},
	}

	for _, tc := range cases {
		if got := Resolve(tc.explicit, tc.accept, tc.fallback); got != tc.want {
			t.Fatalf("Resolve(%q, %q, %q) = %q, want %q", tc.explicit, tc.accept, tc.fallback, got, tc.want)
		}
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "zh-CN,zh;q=0.9", want: LanguageChinese},
		{input: "en-US,en;q=0.9", want: LanguageEnglish},
		{input: "fr-FR,fr;q=0.9", want: ""},
		{input: "fr-FR,en;q=0.8", want: LanguageEnglish},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := LanguageFromAcceptLanguage(tc.input); got != tc.want {
			t.Fatalf("LanguageFromAcceptLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPreferenceForLanguage(t *testing.T) {
	pref := PreferenceForLanguage("en")
	if pref.Language != LanguageEnglish {
		t.Fatalf("expected language %q, got %q", LanguageEnglish, pref.Language)
	}
	if pref.Locale != "en_US" {
		t.Fatalf("expected locale en_US, got %q", pref.Locale)
	}
	if pref.HTMLLang != "en-US" {
		t.Fatalf("expected html lang en-US, got %q", pref.HTMLLang)
	}

	fallback := PreferenceForLanguage("")
	if fallback.Language != LanguageEnglish {
		t.Fatalf("expected fallback language %q, got %q", LanguageEnglish, fallback.Language)
	}

	chinese := PreferenceForLanguage("zh-TW")
	if chinese.HTMLLang != "zh-CN" {
		t.Fatalf("expected html lang zh-CN, got %q", chinese.HTMLLang)
	}
}

func TestPick(t *testing.T) {
	if got := Pick("en", "english", "chinese"); got != "english" {
		t.Fatalf("Pick(en) = %q, want %q", got, "english")
	}
	if got := Pick("zh", "english", "chinese"); got != "chinese" {
		t.Fatalf("Pick(zh) = %q, want %q", got, "chinese")
	}
	if got := Pick("fr", "english", "chinese"); got != "english" {
		t.Fatalf("Pick(fr) = %q, want %q", got, "english")
	}
	if got := Pick("zh", "english", ""); got != "english" {
		t.Fatalf("Pick(zh) without chinese = %q, want %q", got, "english")
	}
}
