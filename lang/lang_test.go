package lang

import (
	"strings"
	"testing"
)

func TestT(t *testing.T) {
	if got := T(En, "cart_title"); got != "My Cart" {
		t.Errorf("T(en, cart_title) = %q", got)
	}
	if got := T(Uz, "cart_title"); got != "Savatim" {
		t.Errorf("T(uz, cart_title) = %q", got)
	}
	if got := T(En, "cart_total", "N3,000"); got != "Total: N3,000" {
		t.Errorf("T(en, cart_total) = %q", got)
	}
	if got := T("fr", "btn_logout"); got != "Logout" {
		t.Errorf("unknown language should fall back to default, got %q", got)
	}
	if got := T(En, "no_such_key"); got != "no_such_key" {
		t.Errorf("missing key should return key, got %q", got)
	}
}

func TestEveryEnglishKeyIsTranslated(t *testing.T) {
	data, err := localesFS.ReadFile("locales/en.toml")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		key, _, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		if got := T(Uz, key); got == key {
			t.Errorf("key %q has no uz message", key)
		}
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "N0"},
		{500, "N500"},
		{3000, "N3,000"},
		{1250000, "N1,250,000"},
	}
	for _, tt := range tests {
		if got := Money(En, tt.amount); got != tt.want {
			t.Errorf("Money(en, %d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("") != Default || Normalize("ru") != Default || Normalize(Uz) != Uz {
		t.Error("Normalize should keep supported codes and map others to Default")
	}
}
