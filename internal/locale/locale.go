// Package locale negotiates the viewing locale and knows each locale's
// numeric short-date convention.
package locale

import (
	"sort"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// browserLayouts override monday's short formats where browsers render
// toLocaleDateString differently (four-digit years, unpadded days).
var browserLayouts = map[string]string{
	"en":    "1/2/2006",
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"de":    "2.1.2006",
	"fr":    "02/01/2006",
	"es":    "2/1/2006",
	"it":    "2/1/2006",
	"pt":    "02/01/2006",
	"nl":    "2-1-2006",
	"ja":    "2006/1/2",
	"zh":    "2006/1/2",
	"ko":    "2006. 1. 2.",
}

const defaultLayout = "1/2/2006"

// Supported lists the locales with a known short-date layout: the browser
// overrides first, then one base language per remaining monday locale.
var Supported = supportedTags()

// mondayLocales are monday's locales in sorted order.
var mondayLocales = sortedMondayLocales()

func sortedMondayLocales() []monday.Locale {
	locales := make([]monday.Locale, 0, len(monday.ShortFormatsByLocale))
	for l := range monday.ShortFormatsByLocale {
		locales = append(locales, l)
	}
	sort.Slice(locales, func(i, j int) bool { return locales[i] < locales[j] })
	return locales
}

func supportedTags() []language.Tag {
	tags := []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
		language.Portuguese,
		language.Dutch,
		language.Japanese,
		language.Chinese,
		language.Korean,
	}

	seen := make(map[string]bool)
	for _, tag := range tags {
		base, _ := tag.Base()
		seen[base.String()] = true
	}

	for _, l := range sortedMondayLocales() {
		base, _, _ := strings.Cut(string(l), "_")
		if seen[base] {
			continue
		}
		tag, err := language.Parse(base)
		if err != nil {
			continue
		}
		seen[base] = true
		tags = append(tags, tag)
	}

	return tags
}

// Negotiator picks a supported locale from an Accept-Language header.
type Negotiator struct {
	tags    []language.Tag
	matcher language.Matcher
}

// NewNegotiator builds a negotiator that answers fallback when nothing matches.
func NewNegotiator(fallback language.Tag) *Negotiator {
	tags := make([]language.Tag, 0, len(Supported)+1)
	tags = append(tags, fallback)
	for _, tag := range Supported {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	return &Negotiator{
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}
}

// Fallback returns the locale used when negotiation finds no match.
func (n *Negotiator) Fallback() language.Tag {
	return n.tags[0]
}

// Match returns the best supported locale for the given Accept-Language values.
func (n *Negotiator) Match(acceptLanguage ...string) language.Tag {
	_, index := language.MatchStrings(n.matcher, acceptLanguage...)
	return n.tags[index]
}

// Parse parses a BCP 47 tag, returning fallback on error.
func Parse(s string, fallback language.Tag) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return fallback
	}
	return tag
}

// ShortDate formats t with the numeric short-date convention of tag.
func ShortDate(t time.Time, tag language.Tag) string {
	loc, _ := MondayLocale(tag)
	return monday.Format(t, ShortDateLayout(tag), loc)
}

// ShortDateLayout returns the time layout used by ShortDate. Browser
// overrides win, then monday's short format for the locale with a
// four-digit year, then en-US.
func ShortDateLayout(tag language.Tag) string {
	layout, ok := browserLayouts[tag.String()]
	if ok {
		return layout
	}

	base, _ := tag.Base()
	layout, ok = browserLayouts[base.String()]
	if ok {
		return layout
	}

	loc, ok := MondayLocale(tag)
	if ok {
		return fullYear(monday.ShortFormatsByLocale[loc])
	}

	return defaultLayout
}

// MondayLocale maps tag to monday's locale: the tag's (possibly inferred)
// region first, then any locale sharing its language. Unknown languages
// report en_US and false.
func MondayLocale(tag language.Tag) (monday.Locale, bool) {
	base, _ := tag.Base()
	region, _ := tag.Region()

	loc := monday.Locale(base.String() + "_" + region.String())
	if _, ok := monday.ShortFormatsByLocale[loc]; ok {
		return loc, true
	}

	prefix := base.String() + "_"
	for _, l := range mondayLocales {
		if strings.HasPrefix(string(l), prefix) {
			return l, true
		}
	}

	return monday.LocaleEnUS, false
}

// fullYear widens a two-digit year, as browsers print all four digits.
func fullYear(layout string) string {
	if strings.Contains(layout, "2006") {
		return layout
	}
	return strings.Replace(layout, "06", "2006", 1)
}
