package locale

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNegotiatorMatch(t *testing.T) {
	n := NewNegotiator(language.AmericanEnglish)

	tests := []struct {
		name   string
		accept string
		want   language.Tag
	}{
		{"empty header", "", language.AmericanEnglish},
		{"unsupported language", "sw", language.AmericanEnglish},
		{"exact german", "de-DE,de;q=0.9", language.German},
		{"british english", "en-GB,en;q=0.8", language.BritishEnglish},
		{"weighted preference", "fr;q=0.5,ja;q=0.9", language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Match(tt.accept))
		})
	}
}

func TestNegotiatorFallback(t *testing.T) {
	n := NewNegotiator(language.German)

	assert.Equal(t, language.German, n.Fallback())
	assert.Equal(t, language.German, n.Match("sw"))
}

func TestShortDate(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.AmericanEnglish, "1/15/2024"},
		{language.English, "1/15/2024"},
		{language.BritishEnglish, "15/01/2024"},
		{language.German, "15.1.2024"},
		{language.MustParse("de-AT"), "15.1.2024"},
		{language.French, "15/01/2024"},
		{language.Japanese, "2024/1/15"},
		{language.Korean, "2024. 1. 15."},
		{language.Swahili, "1/15/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ShortDate(date, tt.tag))
		})
	}
}

func TestShortDateFromMonday(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	finnish := language.Finnish

	loc, ok := MondayLocale(finnish)
	assert.True(t, ok)
	assert.Equal(t, monday.Locale("fi_FI"), loc)

	layout := ShortDateLayout(finnish)
	assert.Equal(t, fullYear(monday.ShortFormatsByLocale[loc]), layout)
	assert.Contains(t, ShortDate(date, finnish), "2024")
	assert.Contains(t, ShortDate(date, finnish), "15")
	assert.NotContains(t, ShortDate(date, finnish), "/24")
}

func TestMondayLocale(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want monday.Locale
		ok   bool
	}{
		{language.German, "de_DE", true},
		{language.BritishEnglish, "en_GB", true},
		{language.MustParse("pt-BR"), "pt_BR", true},
		{language.Swahili, monday.LocaleEnUS, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			loc, ok := MondayLocale(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, loc)
		})
	}
}

func TestFullYear(t *testing.T) {
	assert.Equal(t, "02.01.2006", fullYear("02.01.06"))
	assert.Equal(t, "1/2/2006", fullYear("1/2/06"))
	assert.Equal(t, "2006/01/02", fullYear("2006/01/02"))
}

func TestNegotiatorOffersMondayLocales(t *testing.T) {
	n := NewNegotiator(language.AmericanEnglish)

	assert.Equal(t, language.Finnish, n.Match("fi-FI,fi;q=0.9"))
}

func TestParse(t *testing.T) {
	assert.Equal(t, language.BritishEnglish, Parse("en-GB", language.AmericanEnglish))
	assert.Equal(t, language.AmericanEnglish, Parse("not a tag!", language.AmericanEnglish))
}
